//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=state_get_test
package state_get

import (
	"simulator/internal/service/mapview"
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
	Build() mapview.View
}
