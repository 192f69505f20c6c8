package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PantryChef", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)

	assert.True(t, cfg.AI.Ollama.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.AI.Ollama.Host)
	assert.False(t, cfg.AI.DeepSeek.Enabled)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("PANTRYCHEF_SERVER_PORT", "9191")
	t.Setenv("PANTRYCHEF_APP_ENVIRONMENT", "production")
	t.Setenv("PANTRYCHEF_AI_OLLAMA_MODEL", "llama3.2:1b")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "llama3.2:1b", cfg.AI.Ollama.Model)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		App:    AppConfig{Name: "PantryChef"},
		Server: ServerConfig{Port: 8080},
	}
	assert.NoError(t, valid.Validate())

	noName := &Config{Server: ServerConfig{Port: 8080}}
	assert.Error(t, noName.Validate())

	badPort := &Config{
		App:    AppConfig{Name: "PantryChef"},
		Server: ServerConfig{Port: 0},
	}
	assert.Error(t, badPort.Validate())

	deepseekNoKey := &Config{
		App:    AppConfig{Name: "PantryChef"},
		Server: ServerConfig{Port: 8080},
		AI:     AIConfig{DeepSeek: DeepSeekConfig{Enabled: true}},
	}
	assert.Error(t, deepseekNoKey.Validate())
}
