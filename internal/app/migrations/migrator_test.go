package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := fs.Glob(Files(), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_dashboard_sessions.sql", names[0])

	content, err := fs.ReadFile(Files(), names[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS dashboard_sessions")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_dashboard_sessions.sql"))
	assert.Equal(t, "002", Version("sql/002_more.sql"))
}
