package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/shared/config"
)

func TestDialector(t *testing.T) {
	d, err := Dialector(&config.DatabaseConfig{Driver: "mysql", Host: "db", Port: 3306})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	d, err = Dialector(&config.DatabaseConfig{Driver: "sqlite", Path: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = Dialector(&config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestInitAndClose_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stealthy.db")

	require.NoError(t, Init(&config.DatabaseConfig{Driver: "sqlite", Path: path}))
	require.NotNil(t, Get())

	var one int
	require.NoError(t, Get().Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)

	assert.NoError(t, Close())
}
