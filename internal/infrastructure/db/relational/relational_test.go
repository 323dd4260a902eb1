package relational

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB opens a migrated SQLite database in a per-test temp dir.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(context.Background(), Config{
		Driver: DriverSQLite,
		DSN:    path + "?_busy_timeout=5000",
	}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"}, zerolog.Nop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, Migrate(context.Background(), db), "iteration %d", i)
	}
	require.True(t, db.Migrator().HasIndex(&employeeRecord{}, "idx_employees_email"))
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ann", "%ann%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`x\y`, `%x\\y%`},
		{"", "%%"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, containsPattern(tt.in), "input %q", tt.in)
	}
}
