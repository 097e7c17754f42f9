package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pinkoot/AI-Assistant/internal/httputil"
	"github.com/pinkoot/AI-Assistant/internal/requestlog/http/dto"
	requestLogUseCase "github.com/pinkoot/AI-Assistant/internal/requestlog/usecase"
)

// RunListRequestLogs prints journal entries newest first.
func RunListRequestLogs(
	ctx context.Context,
	useCase requestLogUseCase.RequestLogUseCase,
	w io.Writer,
	offset, limit int,
	format string,
) error {
	asJSON, err := isJSON(format)
	if err != nil {
		return err
	}

	if err := httputil.ValidatePagination(offset, limit); err != nil {
		return err
	}

	logs, err := useCase.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list request logs: %w", err)
	}

	if asJSON {
		return writeJSON(w, dto.MapRequestLogsToListResponse(logs))
	}

	if len(logs) == 0 {
		_, err := fmt.Fprintln(w, "No request logs found")
		return err
	}
	for _, log := range logs {
		if _, err := fmt.Fprintf(w, "%s  %s %s  %d  %dms  %s\n",
			log.CreatedAt.Format(time.RFC3339),
			log.Method,
			log.Path,
			log.StatusCode,
			log.DurationMs,
			log.ClientIP,
		); err != nil {
			return err
		}
	}
	return nil
}

// RunCleanRequestLogs deletes journal entries older than the specified number of days.
// Supports dry-run mode to preview deletion count and both text/JSON output formats.
func RunCleanRequestLogs(
	ctx context.Context,
	useCase requestLogUseCase.RequestLogUseCase,
	logger *slog.Logger,
	w io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}

	asJSON, err := isJSON(format)
	if err != nil {
		return err
	}

	logger.Info("cleaning request logs",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := useCase.DeleteOlderThan(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete request logs: %w", err)
	}

	if asJSON {
		err = writeJSON(w, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		})
	} else if dryRun {
		_, err = fmt.Fprintf(w, "Dry-run mode: Would delete %d request log(s) older than %d day(s)\n", count, days)
	} else {
		_, err = fmt.Fprintf(w, "Successfully deleted %d request log(s) older than %d day(s)\n", count, days)
	}
	if err != nil {
		return err
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)
	return nil
}
