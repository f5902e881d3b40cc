package config

import (
	"strings"
	"time"
)

// BackendConfig Структура конфигурации для создания клиента ETX-бэкенда.
type BackendConfig struct {
	BaseURL  string
	Insecure bool
	Timeout  time.Duration
}

// NewBackendConfig Конструктор, возвращающий конфиг с параметрами для создания клиента бэкенда.
func NewBackendConfig(srvConfig *Config) *BackendConfig {
	return &BackendConfig{
		BaseURL:  strings.TrimRight(srvConfig.BackendURL, "/"),
		Insecure: srvConfig.BackendInsecureTLS,
		Timeout:  srvConfig.BackendTimeout,
	}
}

// HealthURL Адрес health-эндпоинта бэкенда (используется в подсказке пользователю).
func (c *BackendConfig) HealthURL() string {
	return c.BaseURL + "/health"
}
