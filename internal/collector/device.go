package collector

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

// DeviceInfo describes the machine the client runs on.
type DeviceInfo struct {
	UserAgent           string
	Language            string
	Platform            string
	Timezone            string
	Hostname            string
	HardwareConcurrency int
}

// LocalDeviceInfo reads device details from the runtime and environment.
func LocalDeviceInfo(version string) DeviceInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return DeviceInfo{
		UserAgent:           UserAgent(version),
		Language:            language(),
		Platform:            runtime.GOOS + "/" + runtime.GOARCH,
		Timezone:            timezone(),
		Hostname:            hostname,
		HardwareConcurrency: runtime.NumCPU(),
	}
}

// UserAgent returns the client's User-Agent string.
func UserAgent(version string) string {
	if version == "" {
		version = "dev"
	}
	return fmt.Sprintf("ai-assistant/%s (%s; %s)", version, runtime.GOOS, runtime.GOARCH)
}

// language derives a BCP 47 tag from the POSIX locale variables, e.g. "ru_RU.UTF-8"
// becomes "ru-RU".
func language() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		value, _, _ = strings.Cut(value, ".")
		value, _, _ = strings.Cut(value, "@")
		return strings.ReplaceAll(value, "_", "-")
	}
	return "unknown"
}

func timezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return strings.TrimPrefix(tz, ":")
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	name, _ := time.Now().Zone()
	return name
}
