package handoff

import "github.com/trsv-dev/etx-disk-dashboard/internal/models"

//go:generate mockgen -destination=mocks/store_mock.go -package=mocks . Store

// Store Одноразовое хранилище результатов входа для передачи на страницу данных.
type Store interface {
	Put(payload *models.NavigationPayload) string
	Take(id string) (*models.NavigationPayload, bool)
}
