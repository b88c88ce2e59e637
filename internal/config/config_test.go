package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
dbname = "smc_appointments"

[logs]
file = "logs/appointment-service.log"

[service]
master_name = "Мария"
admin_phone = "+79990000000"
`

const configWithoutAdminPhone = `
[server]
http_port = 8083

[database]
host = "localhost"
port = 5432
dbname = "smc_appointments"

[logs]
file = "logs/appointment-service.log"

[service]
master_name = "Мария"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, "Мария", cfg.Service.MasterName)
	assert.Equal(t, "+79990000000", cfg.Service.AdminPhone)
}

func TestLoad_RequiresAdminPhone(t *testing.T) {
	t.Parallel()

	// без телефона администратора сервис на чистой базе был бы
	// неуправляем: ни один запрос не прошел бы проверку прав
	_, err := Load(writeConfig(t, configWithoutAdminPhone))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service.admin_phone")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
