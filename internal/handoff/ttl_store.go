package handoff

import (
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
)

const DefaultTTL = 5 * time.Minute

// TTLStore In-memory хранилище NavigationPayload с ограниченным временем жизни записей.
// Каждая запись может быть прочитана только один раз.
type TTLStore struct {
	cache *ttlcache.Cache[string, *models.NavigationPayload]
}

// NewTTLStore Конструктор TTLStore. Если ttl <= 0 - используется DefaultTTL.
// Запускает фоновую очистку просроченных записей, остановить её можно через Close.
func NewTTLStore(ttl time.Duration) *TTLStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	cache := ttlcache.New[string, *models.NavigationPayload](
		ttlcache.WithTTL[string, *models.NavigationPayload](ttl),
		ttlcache.WithDisableTouchOnHit[string, *models.NavigationPayload](),
	)
	go cache.Start()

	return &TTLStore{cache: cache}
}

// Put Сохраняет payload и возвращает новый идентификатор для ссылки на страницу данных.
func (s *TTLStore) Put(payload *models.NavigationPayload) string {
	id := uuid.NewString()
	s.cache.Set(id, payload, ttlcache.DefaultTTL)

	return id
}

// Take Возвращает payload и сразу удаляет его: повторное чтение (перезагрузка страницы)
// ничего не найдёт.
func (s *TTLStore) Take(id string) (*models.NavigationPayload, bool) {
	if id == "" {
		return nil, false
	}

	item, ok := s.cache.GetAndDelete(id)
	if !ok || item == nil || item.IsExpired() {
		return nil, false
	}

	return item.Value(), true
}

// Len Количество непрочитанных записей.
func (s *TTLStore) Len() int {
	return s.cache.Len()
}

// Close Останавливает фоновую очистку.
func (s *TTLStore) Close() {
	s.cache.Stop()
}
