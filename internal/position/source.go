package position

import (
	"context"
	"fmt"
	"sync"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

// Source -- источник позиции поверх Provider: состояние разрешения,
// последний фикс и раздача фиксов подписчикам. Несколько подписчиков
// могут висеть одновременно, подписка не затирает предыдущую.
type Source struct {
	log      handlerLogger
	provider Provider
	perms    PermissionStore

	mu          sync.Mutex
	current     *entities.Position
	tracking    bool
	stopWatch   context.CancelFunc
	subscribers map[int]func(entities.Position)
	nextSubID   int
}

func New(provider Provider, perms PermissionStore, log handlerLogger) *Source {
	return &Source{
		log:         log.With(logger.NewField("component", "position_source")),
		provider:    provider,
		perms:       perms,
		subscribers: make(map[int]func(entities.Position)),
	}
}

func (s *Source) Supported() bool {
	return s.provider.Supported()
}

// RequestPermission запрашивает разрешение на геолокацию и первый фикс.
// Если разрешение уже выдавалось в прошлой сессии, промпт пропускается.
// Результат (грант или отказ) персистится для следующей сессии.
func (s *Source) RequestPermission(ctx context.Context) (entities.Position, error) {
	if !s.provider.Supported() {
		return entities.Position{}, ErrUnsupported
	}

	silent := s.perms.GPSGranted()
	pos, err := s.provider.RequestPermission(ctx, silent)
	if err != nil {
		if persistErr := s.perms.SetGPSGranted(false); persistErr != nil {
			s.log.Warn("persist gps permission flag", logger.NewField("error", persistErr))
		}
		return entities.Position{}, fmt.Errorf("request permission: %w", err)
	}

	if persistErr := s.perms.SetGPSGranted(true); persistErr != nil {
		s.log.Warn("persist gps permission flag", logger.NewField("error", persistErr))
	}

	s.mu.Lock()
	s.current = &pos
	s.mu.Unlock()

	return pos, nil
}

// StartTracking запускает непрерывное отслеживание позиции.
// Повторный вызов при уже идущем отслеживании -- no-op.
func (s *Source) StartTracking(ctx context.Context) error {
	s.mu.Lock()
	if s.tracking {
		s.mu.Unlock()
		return nil
	}

	watchCtx, cancel := context.WithCancel(ctx)
	fixes, err := s.provider.StartWatch(watchCtx)
	if err != nil {
		cancel()
		s.mu.Unlock()
		return fmt.Errorf("start watch: %w", err)
	}

	s.tracking = true
	s.stopWatch = cancel
	s.mu.Unlock()

	go s.consumeFixes(fixes)
	return nil
}

// StopTracking останавливает отслеживание. Идемпотентно.
func (s *Source) StopTracking() {
	s.mu.Lock()
	if !s.tracking {
		s.mu.Unlock()
		return
	}
	s.tracking = false
	cancel := s.stopWatch
	s.stopWatch = nil
	s.mu.Unlock()

	cancel()
	s.provider.StopWatch()
}

// Subscribe регистрирует обработчик фиксов. Возвращает функцию отписки.
func (s *Source) Subscribe(fn func(entities.Position)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Current возвращает последний известный фикс.
func (s *Source) Current() (entities.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entities.Position{}, false
	}
	return *s.current, true
}

// Quality возвращает качество последнего фикса.
func (s *Source) Quality() (entities.AccuracyQuality, bool) {
	pos, ok := s.Current()
	if !ok {
		return "", false
	}
	return pos.Quality(), true
}

func (s *Source) consumeFixes(fixes <-chan entities.Position) {
	for pos := range fixes {
		s.mu.Lock()
		current := pos
		s.current = &current
		handlers := make([]func(entities.Position), 0, len(s.subscribers))
		for _, fn := range s.subscribers {
			handlers = append(handlers, fn)
		}
		s.mu.Unlock()

		for _, fn := range handlers {
			fn(pos)
		}
	}
}
