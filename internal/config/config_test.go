package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"apicatalogo/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.DBAutoMigrate)
	assert.Equal(t, "/tmp/log_apiCatalogo.txt", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogFileLevel)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := "APP_PORT=:9090\nDB_DRIVER=sqlite\nDATABASE_DSN=catalogo.db\nAPP_ENV=production\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0o600))
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "catalogo.db", cfg.DatabaseDSN)
	assert.Equal(t, "postgres", cfg.DBDriver, "environment overrides the .env file")
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.IsProduction())
}
