// Package migrations embeds the SQL schema for every supported database driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgresql/*.sql mysql/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration files for driver (postgres, mysql, or sqlite).
func FS(driver string) (fs.FS, error) {
	dir := driver
	if driver == "postgres" {
		dir = "postgresql"
	}

	sub, err := fs.Sub(files, dir)
	if err != nil {
		return nil, err
	}
	if _, err := fs.Stat(sub, "000001_create_request_logs_table.up.sql"); err != nil {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	return sub, nil
}
