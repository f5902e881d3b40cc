package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/MatusOllah/slogcolor"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogAdapter Адаптер для логгера slog.
type SlogAdapter struct {
	slog   *slog.Logger
	output io.Closer
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) {
	s.slog.Debug(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Info(msg string, fields ...Field) {
	s.slog.Info(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Error(msg string, fields ...Field) {
	s.slog.Error(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Warn(msg string, fields ...Field) {
	s.slog.Warn(msg, convertFields(fields)...)
}

// Close Закрывает файл лога (если логирование ведётся в файл).
func (s *SlogAdapter) Close() error {
	if s.output == nil {
		return nil
	}

	return s.output.Close()
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: strconv.Itoa(val),
	}
}

func Int64(key string, val int64) Field {
	return Field{
		Key:   key,
		Value: strconv.FormatInt(val, 10),
	}
}

// Err Поле с текстом ошибки под ключом "err".
func Err(err error) Field {
	if err == nil {
		return String("err", "<nil>")
	}

	return String("err", err.Error())
}

// Конвертация Fields в any[].
func convertFields(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

var (
	Log  Logger
	once sync.Once
)

// parseLevel Преобразует строковый уровень логирования в slog.Level.
// Неизвестный уровень трактуется как Debug.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// InitLogger Инициализация логгера.
// output == "stdout" (или пустая строка) - цветной вывод в консоль,
// иначе output считается путём к файлу лога с ротацией.
func InitLogger(level string, output string) {
	once.Do(func() {
		lvl := parseLevel(level)

		if output == "" || strings.EqualFold(output, "stdout") {
			opts := *slogcolor.DefaultOptions
			opts.Level = lvl

			Log = &SlogAdapter{slog: slog.New(slogcolor.NewHandler(os.Stdout, &opts))}
			return
		}

		file := &lumberjack.Logger{
			Filename:   output,
			MaxSize:    10, // мегабайты
			MaxBackups: 3,
			MaxAge:     28, // дни
		}

		handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: lvl})
		Log = &SlogAdapter{slog: slog.New(handler), output: file}
	})
}
