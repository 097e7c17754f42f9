// Package collector gathers the user metadata and coordinates attached to every request.
package collector

import (
	"context"
	"log/slog"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// Collector builds the metadata map merged into every parameter map.
type Collector struct {
	ips    *IPLookup
	device DeviceInfo
	logger *slog.Logger
}

// NewCollector creates a collector that reports device and public IP.
func NewCollector(ips *IPLookup, device DeviceInfo, logger *slog.Logger) *Collector {
	return &Collector{ips: ips, device: device, logger: logger}
}

// Collect returns the metadata map, ip first. When the public IP cannot be resolved the
// map is empty and no error is returned: a request without metadata still goes out.
func (c *Collector) Collect(ctx context.Context) (*protocolDomain.Params, error) {
	ip, err := c.ips.PublicIP(ctx)
	if err != nil {
		c.logger.Warn("failed to resolve public ip, sending request without metadata",
			slog.Any("error", err),
		)
		return protocolDomain.NewParams(), nil
	}

	return protocolDomain.NewParams().
		SetString("ip", ip).
		SetString("userAgent", c.device.UserAgent).
		SetString("language", c.device.Language).
		SetString("platform", c.device.Platform).
		SetString("timezone", c.device.Timezone).
		SetString("hostname", c.device.Hostname).
		Set("online", protocolDomain.BoolValue(true)).
		SetString("deviceMemory", "unknown").
		Set("hardwareConcurrency", protocolDomain.IntValue(c.device.HardwareConcurrency)), nil
}
