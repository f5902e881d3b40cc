package health_handler

import (
	"context"
	"net/http"
	"time"

	"github.com/trsv-dev/etx-disk-dashboard/internal/backend"
	"github.com/trsv-dev/etx-disk-dashboard/internal/logger"
)

const healthTimeout = 2 * time.Second

// HealthHandler обрабатывает HTTP-запросы для проверки состояния сервиса.
type HealthHandler struct {
	client backend.Client
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(client backend.Client) *HealthHandler {
	return &HealthHandler{
		client: client,
	}
}

// GetHealth обрабатывает health-check запрос и возвращает статус готовности сервиса.
// Возвращает HTTP 200, если ETX-бэкенд доступен, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.client.Health(ctx); err != nil {
		logger.Log.Error("ETX-бэкенд не отвечает", logger.Err(err))

		http.Error(w, "ETX-бэкенд недоступен", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
