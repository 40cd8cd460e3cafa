package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr)
	assert.Equal(t, "127.0.0.1:8283", cfg.ReplspaceAddr)
	assert.Equal(t, ".replit", cfg.DotReplitPath)
	assert.Equal(t, 60, cfg.Replspace.TimeoutSeconds)
}

func TestLoadOverridesOnlyProvidedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"listen_addr": "127.0.0.1:9000", "log_level": "debug"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8283", cfg.ReplspaceAddr)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"HOMEVAL_DB":          "sqlite:///tmp/homeval.db",
		"HOMEVAL_REPLDB_ADDR": "127.0.0.1:7777",
		"HOMEVAL_REDIS_DB":    "2",
	}
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/homeval.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:7777", cfg.ReplDBAddr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Driver = "postgres"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "sqlite"
	assert.Error(t, cfg.Validate(), "sqlite without a path must fail")
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.PidFile = "/run/homeval.pid"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/run/homeval.pid", loaded.PidFile)
}

func TestParseDotReplit(t *testing.T) {
	dr, err := ParseDotReplit([]byte(`
run = "python3 main.py"
language = "python3"
entrypoint = "main.py"
hidden = [".config", "venv"]

[env]
PYTHONUNBUFFERED = "1"

[languages.python3]
pattern = "**/*.py"
syntax = "python"
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"sh", "-c", "python3 main.py"}, dr.Run)
	assert.Equal(t, "python3", dr.Language)
	assert.Equal(t, "main.py", dr.Entrypoint)
	assert.Equal(t, []string{".config", "venv"}, dr.Hidden)
	assert.Equal(t, "1", dr.Env["PYTHONUNBUFFERED"])
	assert.Equal(t, "**/*.py", dr.Languages["python3"].Pattern)
}

func TestParseDotReplitArrayRun(t *testing.T) {
	dr, err := ParseDotReplit([]byte(`run = ["node", "index.js"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "index.js"}, dr.Run)

	_, err = ParseDotReplit([]byte(`run = 3`))
	assert.Error(t, err)
}

func TestLoadDotReplitMissing(t *testing.T) {
	dr, err := LoadDotReplit(filepath.Join(t.TempDir(), ".replit"))
	require.NoError(t, err)
	assert.Empty(t, dr.Run)
}
