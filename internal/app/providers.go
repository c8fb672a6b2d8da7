package app

import (
	"context"
	"net/http"
	"time"

	"simulator/internal/gateway/realtime"
	gameGateway "simulator/internal/gateway/rest/game"
	action_post "simulator/internal/handlers/rest/action_post"
	shift_end_post "simulator/internal/handlers/rest/shift_end_post"
	state_get "simulator/internal/handlers/rest/state_get"
	"simulator/internal/handlers/tasks/session_heartbeat"
	"simulator/internal/pkg/config"
	"simulator/internal/pkg/confirm"
	"simulator/internal/position"
	"simulator/internal/service/lifecycle"
	"simulator/internal/service/mapview"
	"simulator/internal/store"
	"simulator/pkg/background"
	"simulator/pkg/logger"
	"simulator/pkg/token_bucket"
)

type Application struct {
	ServiceLifecycle ServiceLifecycle
	ServiceMapView   ServiceMapView

	Controller        *lifecycle.Controller
	Channel           *realtime.Channel
	Store             *store.Store
	BackgroundWorkers *background.Worker
}

type ServiceLifecycle interface {
	action_post.Service
	shift_end_post.Service
}

type ServiceMapView interface {
	state_get.Service
}

func provideStore(log logger.Logger, cfg *config.Config) (*store.Store, error) {
	sessionStore := store.New(cfg.Store.StateFilePath, log)

	// Отсутствие файла состояния -- не ошибка, это первый запуск.
	restored := sessionStore.Restore()
	log.Info("session store initialized", logger.NewField("restored", restored))

	if err := sessionStore.SetUserID(cfg.Game.UserID); err != nil {
		return nil, err
	}
	return sessionStore, nil
}

func provideGameGateway(cfg *config.Config) *gameGateway.Gateway {
	client := &http.Client{Timeout: cfg.GameAPI.RequestTimeout}
	return gameGateway.New(cfg.GameAPI.BaseURL, client)
}

func providePositionLimiter(cfg *config.Config) *token_bucket.TokenBucket {
	return token_bucket.NewTokenBucket(
		cfg.Realtime.PositionLimitQPS,
		float64(cfg.Realtime.PositionLimitBurst),
	)
}

func provideRealtimeChannel(cfg *config.Config, limiter *token_bucket.TokenBucket, log logger.Logger) *realtime.Channel {
	return realtime.New(cfg.Realtime.URL, limiter, log)
}

func provideGPSProvider(cfg *config.Config) *position.SimulatedProvider {
	return position.NewSimulatedProvider(
		cfg.GPS.StartLat,
		cfg.GPS.StartLng,
		cfg.GPS.SpeedKmh,
		cfg.GPS.UpdateInterval,
		time.Now().UnixNano(),
	)
}

func providePositionSource(provider *position.SimulatedProvider, sessionStore *store.Store, log logger.Logger) *position.Source {
	return position.New(provider, sessionStore, log)
}

func provideZonePoller(log logger.Logger, cfg *config.Config) *background.Poller {
	return background.NewPoller(log, "zones", cfg.Game.ZonePollInterval)
}

func provideLifecycleController(
	gateway *gameGateway.Gateway,
	channel *realtime.Channel,
	positions *position.Source,
	sessionStore *store.Store,
	poller *background.Poller,
	confirmer *confirm.ContextConfirmer,
	log logger.Logger,
	cfg *config.Config,
) *lifecycle.Controller {
	return lifecycle.New(
		gateway,
		channel,
		positions,
		sessionStore,
		poller,
		confirmer,
		log,
		lifecycle.Config{
			SearchRadiusKm:   cfg.Game.SearchRadiusKm,
			SearchStartDelay: cfg.Game.SearchStartDelay,
		},
	)
}

func provideMapView(controller *lifecycle.Controller, sessionStore *store.Store, positions *position.Source) *mapview.Service {
	return mapview.New(controller, sessionStore, positions)
}

func provideHeartbeatTask(
	log logger.Logger,
	controller *lifecycle.Controller,
	sessionStore *store.Store,
	cfg *config.Config,
) *session_heartbeat.SessionHeartbeat {
	return session_heartbeat.New(log, controller, sessionStore, cfg.Tasks.HeartbeatInterval)
}

func provideTaskList(heartbeat *session_heartbeat.SessionHeartbeat) []background.Task {
	return []background.Task{
		heartbeat,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
