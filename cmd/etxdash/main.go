package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/etx-disk-dashboard/internal/backend"
	"github.com/trsv-dev/etx-disk-dashboard/internal/config"
	"github.com/trsv-dev/etx-disk-dashboard/internal/di_containers"
	"github.com/trsv-dev/etx-disk-dashboard/internal/handoff"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
	"github.com/trsv-dev/etx-disk-dashboard/internal/server"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
)

// "Сборка" и запуск проекта.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// загружаем переменные окружения из .env для локальной разработки
	if errEnv := godotenv.Load(".env"); errEnv != nil {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	// инициализация конфигурации сервера
	srvConfig := config.InitConfig()

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Log.(*logger.SlogAdapter).Close()

	// шаблоны страниц и статика встроены в бинарник
	renderer, err := view.NewTemplateRenderer()
	if err != nil {
		logger.Log.Error("Не удалось разобрать шаблоны страниц", logger.Err(err))
		os.Exit(1)
	}

	backendConfig := config.NewBackendConfig(srvConfig)
	if backendConfig.Insecure {
		logger.Log.Warn("Проверка TLS-сертификата бэкенда отключена", logger.String("backend", backendConfig.BaseURL))
	}

	client := backend.NewHTTPClient(backendConfig)

	// хранилище результатов входа, передаваемых на страницу данных
	store := handoff.NewTTLStore(srvConfig.HandoffTTL)
	defer store.Close()

	// создаём handlersContainer - контейнер зависимостей для всех хендлеров
	handlersContainer := di_containers.NewHandlersContainer(client, store, renderer, backendConfig)

	// создаем сервер и запускаем его
	srv, serverErrorCh := server.RunServer(srvConfig.RunAddress, handlersContainer)

	logger.Log.Info("Клиент ETX-бэкенда настроен",
		logger.String("backend", backendConfig.BaseURL),
		logger.String("timeout", backendConfig.Timeout.String()))

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop) // гарантированно перестанем слушать сигнал при выходе

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return
		}
		logger.Log.Error("Ошибка сервера", logger.Err(err))
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	// контекст для завершения работы сервера
	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer serverShutdownCancel()

	// остановка сервера
	if err = srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка при остановке сервера", logger.Err(err))
		return
	}

	logger.Log.Info("Сервер успешно остановлен", logger.Int("pending_handoffs", store.Len()))
}
