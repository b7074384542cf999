package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aprs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "user: N0CALL\npasscode: \"13023\"\nhost: euro.aprs2.net\nport: 10152\nfilter: m/50\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "N0CALL", cfg.User)
	assert.Equal(t, "13023", cfg.Passcode)
	assert.Equal(t, "euro.aprs2.net", cfg.Host)
	assert.Equal(t, 10152, cfg.Port)
	assert.Equal(t, "m/50", cfg.Filter)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "user: N0CALL\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultFilter, cfg.Filter)
}

func TestLoadConfigRequiresUser(t *testing.T) {
	path := writeConfig(t, "filter: m/50\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
