// Command app drives the assistant protocol: encrypted, signed requests to the backend,
// the loopback mirror that answers them, and the request journal behind it.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/pinkoot/AI-Assistant/internal/app"
	apperrors "github.com/pinkoot/AI-Assistant/internal/errors"
)

// Exit codes: 1 for runtime failures, 2 for rejected input.
const (
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := &cli.Command{
		Name:                  "app",
		Usage:                 "Encrypted, signed client for the assistant backend and its loopback mirror",
		Version:               app.Version,
		EnableShellCompletion: true,
		Commands:              getCommands(app.Version),
	}

	err := cmd.Run(ctx, os.Args)
	stop()
	if err == nil {
		return
	}

	slog.Error("application error", slog.Any("error", err))
	if apperrors.Is(err, apperrors.ErrInvalidInput) {
		os.Exit(exitInvalidInput)
	}
	os.Exit(exitFailure)
}
