//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"simulator/internal/pkg/config"
	"simulator/internal/pkg/confirm"
	lifecycleService "simulator/internal/service/lifecycle"
	mapviewService "simulator/internal/service/mapview"

	"simulator/pkg/logger"

	"github.com/google/wire"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideStore,
		provideGameGateway,
		providePositionLimiter,
		provideRealtimeChannel,
		provideGPSProvider,
		providePositionSource,
		provideZonePoller,
		confirm.NewContextConfirmer,
		provideLifecycleController,
		provideMapView,

		provideHeartbeatTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Controller)),
		wire.Bind(new(ServiceMapView), new(*mapviewService.Service)),
	)
	return &Application{}, nil
}
