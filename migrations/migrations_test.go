package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			sub, err := FS(driver)
			require.NoError(t, err)

			entries, err := fs.ReadDir(sub, ".")
			require.NoError(t, err)
			assert.Len(t, entries, 4)
		})
	}

	t.Run("Error_UnknownDriver", func(t *testing.T) {
		_, err := FS("oracle")
		assert.Error(t, err)
	})
}
