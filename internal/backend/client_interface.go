package backend

import (
	"context"

	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . Client

// Client Интерфейс клиента ETX-бэкенда.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.NavigationPayload, error)
	SendReminder(ctx context.Context, req models.ReminderRequest) error
	Health(ctx context.Context) error
}
