package di_containers

import (
	"github.com/trsv-dev/etx-disk-dashboard/internal/api/data_handler"
	"github.com/trsv-dev/etx-disk-dashboard/internal/api/health_handler"
	"github.com/trsv-dev/etx-disk-dashboard/internal/api/login_handler"
	"github.com/trsv-dev/etx-disk-dashboard/internal/backend"
	"github.com/trsv-dev/etx-disk-dashboard/internal/config"
	"github.com/trsv-dev/etx-disk-dashboard/internal/handoff"
	"github.com/trsv-dev/etx-disk-dashboard/internal/view"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	LoginHandler  *login_handler.LoginHandler
	DataHandler   *data_handler.DataHandler
	HealthHandler *health_handler.HealthHandler
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
func NewHandlersContainer(client backend.Client, store handoff.Store, renderer view.Renderer, backendConfig *config.BackendConfig) *HandlersContainer {
	loginHandler := login_handler.NewLoginHandler(client, store, renderer, backendConfig.HealthURL())
	dataHandler := data_handler.NewDataHandler(client, store, renderer)
	healthHandler := health_handler.NewHealthHandler(client)

	return &HandlersContainer{
		LoginHandler:  loginHandler,
		DataHandler:   dataHandler,
		HealthHandler: healthHandler,
	}
}
