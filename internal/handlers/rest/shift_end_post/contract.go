//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shift_end_post_test
package shift_end_post

import (
	"context"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RequestEndShift(ctx context.Context) error
	State() entities.LifecycleState
}
