package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// envFrom Возвращает функцию поиска переменных окружения по переданной map.
func envFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// TestParseDefaults Проверяет значения по умолчанию.
func TestParseDefaults(t *testing.T) {
	cfg := parse(flag.NewFlagSet("test", flag.ContinueOnError), nil, envFrom(nil))

	assert.Equal(t, "127.0.0.1:8080", cfg.RunAddress)
	assert.Equal(t, "https://127.0.0.1:5000", cfg.BackendURL)
	assert.Equal(t, 60*time.Second, cfg.BackendTimeout)
	assert.False(t, cfg.BackendInsecureTLS)
	assert.Equal(t, 5*time.Minute, cfg.HandoffTTL)
	assert.Equal(t, "Debug", cfg.LogLevel)
	assert.Equal(t, "stdout", cfg.LogOutput)
}

// TestParseFlags Проверяет разбор флагов командной строки.
func TestParseFlags(t *testing.T) {
	args := []string{"-a", ":9090", "-b", "https://10.0.0.5:5000", "-bt", "5s", "-insecure", "-ht", "1m", "-ll", "error", "-lo", "/tmp/etx.log"}

	cfg := parse(flag.NewFlagSet("test", flag.ContinueOnError), args, envFrom(nil))

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, "https://10.0.0.5:5000", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.True(t, cfg.BackendInsecureTLS)
	assert.Equal(t, time.Minute, cfg.HandoffTTL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "/tmp/etx.log", cfg.LogOutput)
}

// TestParseEnvOverridesFlags Проверяет, что переменные окружения имеют приоритет над флагами.
func TestParseEnvOverridesFlags(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":          "0.0.0.0:8081",
		"BACKEND_URL":          "https://backend:5000/",
		"BACKEND_TIMEOUT":      "15s",
		"BACKEND_INSECURE_TLS": "true",
		"HANDOFF_TTL":          "30s",
		"LOG_LEVEL":            "Info",
		"LOG_OUTPUT":           "etx.log",
	}

	cfg := parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-a", ":9090"}, envFrom(env))

	assert.Equal(t, "0.0.0.0:8081", cfg.RunAddress)
	assert.Equal(t, "https://backend:5000/", cfg.BackendURL)
	assert.Equal(t, 15*time.Second, cfg.BackendTimeout)
	assert.True(t, cfg.BackendInsecureTLS)
	assert.Equal(t, 30*time.Second, cfg.HandoffTTL)
	assert.Equal(t, "Info", cfg.LogLevel)
	assert.Equal(t, "etx.log", cfg.LogOutput)
}

// TestParseInvalidEnvIgnored Проверяет, что некорректные значения окружения не ломают конфигурацию.
func TestParseInvalidEnvIgnored(t *testing.T) {
	env := map[string]string{
		"BACKEND_TIMEOUT":      "soon",
		"BACKEND_INSECURE_TLS": "maybe",
		"HANDOFF_TTL":          "-",
	}

	cfg := parse(flag.NewFlagSet("test", flag.ContinueOnError), nil, envFrom(env))

	assert.Equal(t, 60*time.Second, cfg.BackendTimeout)
	assert.False(t, cfg.BackendInsecureTLS)
	assert.Equal(t, 5*time.Minute, cfg.HandoffTTL)
}

// TestNewBackendConfig Проверяет сборку конфигурации клиента бэкенда.
func TestNewBackendConfig(t *testing.T) {
	srvConfig := &Config{
		BackendURL:         "https://127.0.0.1:5000/",
		BackendTimeout:     10 * time.Second,
		BackendInsecureTLS: true,
	}

	bc := NewBackendConfig(srvConfig)

	assert.Equal(t, "https://127.0.0.1:5000", bc.BaseURL)
	assert.True(t, bc.Insecure)
	assert.Equal(t, 10*time.Second, bc.Timeout)
	assert.Equal(t, "https://127.0.0.1:5000/health", bc.HealthURL())
}
