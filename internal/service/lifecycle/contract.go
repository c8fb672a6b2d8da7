//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

type GameGateway interface {
	StartShift(ctx context.Context, userID int64) error
	StopShift(ctx context.Context, userID int64) error
	AcceptOrder(ctx context.Context, userID int64, orderID string) (*entities.Order, error)
	CancelOrder(ctx context.Context, userID int64, reason string) error
	PickupOrder(ctx context.Context, userID int64) (*entities.Order, error)
	DeliverOrder(ctx context.Context, userID int64) (*entities.DeliveryResult, error)
	ReportPosition(ctx context.Context, userID int64, pos entities.Position) (entities.ZoneStatus, error)
	Status(ctx context.Context, userID int64) (*entities.AccountStatus, error)
}

type RealtimeChannel interface {
	Login(userID int64)
	StartSearch(radiusKm float64)
	StopSearch()
	SendPosition(pos entities.Position)
	OnOrderFound(fn func(order entities.Order))
	OnNoOrdersFound(fn func(message string))
	OnSearchError(fn func(message string))
}

type PositionSource interface {
	Supported() bool
	RequestPermission(ctx context.Context) (entities.Position, error)
	StartTracking(ctx context.Context) error
	StopTracking()
	Subscribe(fn func(pos entities.Position)) func()
	Current() (entities.Position, bool)
}

type SessionStore interface {
	UserID() int64
	OnShift() bool
	Searching() bool
	CurrentOrder() *entities.Order
	GPSGranted() bool
	SetOnShift(onShift bool) error
	SetSearching(searching bool) error
	SetCurrentOrder(order *entities.Order) error
	SetBalance(balance float64) error
	ClearShift() error
}

type ZonePoller interface {
	Start(ctx context.Context, fn func(context.Context))
	Stop()
	Running() bool
}

// Confirmer запрашивает у пользователя подтверждение деструктивного действия.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
