package inflight

import "sync"

// Guard Защита от повторного запуска действия, пока предыдущий запуск с тем же ключом
// ещё не завершён. Повторная активация игнорируется.
type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// NewGuard Конструктор Guard.
func NewGuard() *Guard {
	return &Guard{active: make(map[string]struct{})}
}

// TryAcquire Помечает действие с ключом key как выполняющееся.
// Возвращает функцию освобождения и true, либо nil и false, если действие уже выполняется.
// Функцию освобождения безопасно вызывать несколько раз.
func (g *Guard) TryAcquire(key string) (func(), bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	var once sync.Once
	release := func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.active, key)
			g.mu.Unlock()
		})
	}

	return release, true
}

// InFlight Количество выполняющихся действий.
func (g *Guard) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.active)
}
