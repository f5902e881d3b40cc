package config

import (
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	RunAddress         string
	BackendURL         string
	BackendTimeout     time.Duration
	BackendInsecureTLS bool
	HandoffTTL         time.Duration
	LogLevel           string
	LogOutput          string
}

// InitConfig Инициализация структуры, содержащей конфигурацию сервера, полученную из флагов или
// переменных окружения.
func InitConfig() *Config {
	return parse(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

// parse Разбирает флаги из args, после чего переопределяет значения переменными окружения.
// Некорректные значения длительностей и булевых переменных окружения игнорируются.
func parse(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) *Config {
	config := &Config{}

	fs.StringVar(&config.RunAddress, "a", "127.0.0.1:8080", "HTTP server address and port")
	fs.StringVar(&config.BackendURL, "b", "https://127.0.0.1:5000", "ETX backend base URL")
	fs.DurationVar(&config.BackendTimeout, "bt", 60*time.Second, "Timeout for a single request to the ETX backend")
	fs.BoolVar(&config.BackendInsecureTLS, "insecure", false, "Skip TLS verification of the ETX backend (self-signed adhoc certificate)")
	fs.DurationVar(&config.HandoffTTL, "ht", 5*time.Minute, "How long an unread login result waits for the data page")
	fs.StringVar(&config.LogLevel, "ll", "Debug", "Log level for logging (example: Debug, Info, Warn, Error)")
	fs.StringVar(&config.LogOutput, "lo", "stdout", "Log output: `stdout` or path to a log file")
	_ = fs.Parse(args)

	if value, ok := lookupEnv("RUN_ADDRESS"); ok {
		config.RunAddress = value
	}

	if value, ok := lookupEnv("BACKEND_URL"); ok {
		config.BackendURL = value
	}

	if value, ok := lookupEnv("BACKEND_TIMEOUT"); ok {
		if d, err := time.ParseDuration(value); err == nil {
			config.BackendTimeout = d
		}
	}

	if value, ok := lookupEnv("BACKEND_INSECURE_TLS"); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			config.BackendInsecureTLS = b
		}
	}

	if value, ok := lookupEnv("HANDOFF_TTL"); ok {
		if d, err := time.ParseDuration(value); err == nil {
			config.HandoffTTL = d
		}
	}

	if value, ok := lookupEnv("LOG_LEVEL"); ok {
		config.LogLevel = value
	}

	if value, ok := lookupEnv("LOG_OUTPUT"); ok {
		config.LogOutput = value
	}

	return config
}
