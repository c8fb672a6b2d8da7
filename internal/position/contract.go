package position

import (
	"context"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

// Provider -- низкоуровневая обертка над API геолокации устройства.
type Provider interface {
	// Supported сообщает, есть ли на устройстве геолокация вообще.
	Supported() bool

	// RequestPermission запрашивает разрешение и первый фикс.
	// silent=true -- разрешение уже выдавалось раньше, промпт не показываем
	// и сразу делаем тихий запрос позиции.
	RequestPermission(ctx context.Context, silent bool) (entities.Position, error)

	// StartWatch запускает непрерывное отслеживание. Канал закрывается
	// при StopWatch или отмене контекста.
	StartWatch(ctx context.Context) (<-chan entities.Position, error)
	StopWatch()
}

// PermissionStore персистит флаг "разрешение уже выдавалось", чтобы
// следующая сессия не показывала промпт.
type PermissionStore interface {
	GPSGranted() bool
	SetGPSGranted(granted bool) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
