package commands

import (
	"fmt"
	"log/slog"

	"github.com/pinkoot/AI-Assistant/internal/database"
)

// RunMigrations applies the embedded request journal migrations for driver.
// Returns nil if there is nothing to apply.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	logger.Info("running database migrations",
		slog.String("driver", driver),
	)

	db, err := database.Connect(database.Config{
		Driver:             driver,
		ConnectionString:   connectionString,
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	m, err := database.NewMigrate(db, driver)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := database.MigrateUp(m); err != nil {
		return err
	}

	logger.Info("migrations completed successfully")
	return nil
}
