package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	GameAPI struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	AdminAPI struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	Realtime struct {
		URL string

		// Троттлинг исходящих update_position
		PositionLimitQPS   int
		PositionLimitBurst int
	}

	Game struct {
		UserID           int64
		SearchRadiusKm   float64
		SearchStartDelay time.Duration // пауза registration-before-search
		ZonePollInterval time.Duration
	}

	Store struct {
		StateFilePath string
	}

	Tasks struct {
		HeartbeatInterval time.Duration
	}

	GPS struct {
		StartLat       float64
		StartLng       float64
		SpeedKmh       float64
		UpdateInterval time.Duration
	}

	Config struct {
		Server   HTTPServer
		GameAPI  GameAPI
		AdminAPI AdminAPI
		Realtime Realtime
		Game     Game
		Store    Store
		Tasks    Tasks
		GPS      GPS
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gameAPITimeout, err := osGetEnvDuration("GAME_API_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	adminAPITimeout, err := osGetEnvDuration("ADMIN_API_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionLimitQPS, err := osGetInt("REALTIME_POSITION_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionLimitBurst, err := osGetInt("REALTIME_POSITION_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	userID, err := osGetInt64("GAME_USER_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	searchRadiusKm, err := osGetFloat("GAME_SEARCH_RADIUS_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	searchStartDelay, err := osGetEnvDuration("GAME_SEARCH_START_DELAY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	zonePollInterval, err := osGetEnvDuration("GAME_ZONE_POLL_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	heartbeatInterval, err := osGetEnvDuration("TASKS_HEARTBEAT_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gpsStartLat, err := osGetFloat("GPS_START_LAT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gpsStartLng, err := osGetFloat("GPS_START_LNG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gpsSpeedKmh, err := osGetFloat("GPS_SPEED_KMH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	gpsUpdateInterval, err := osGetEnvDuration("GPS_UPDATE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GameAPI: GameAPI{
			BaseURL:        os.Getenv("GAME_API_BASE_URL"),
			RequestTimeout: gameAPITimeout,
		},
		AdminAPI: AdminAPI{
			BaseURL:        os.Getenv("ADMIN_API_BASE_URL"),
			RequestTimeout: adminAPITimeout,
		},
		Realtime: Realtime{
			URL:                os.Getenv("REALTIME_URL"),
			PositionLimitQPS:   positionLimitQPS,
			PositionLimitBurst: positionLimitBurst,
		},
		Game: Game{
			UserID:           userID,
			SearchRadiusKm:   searchRadiusKm,
			SearchStartDelay: searchStartDelay,
			ZonePollInterval: zonePollInterval,
		},
		Store: Store{
			StateFilePath: os.Getenv("STATE_FILE_PATH"),
		},
		Tasks: Tasks{
			HeartbeatInterval: heartbeatInterval,
		},
		GPS: GPS{
			StartLat:       gpsStartLat,
			StartLng:       gpsStartLng,
			SpeedKmh:       gpsSpeedKmh,
			UpdateInterval: gpsUpdateInterval,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.GameAPI.BaseURL == "" {
		return errors.New("GAME_API_BASE_URL is required")
	}
	if cfg.GameAPI.RequestTimeout == time.Duration(0) {
		return errors.New("GAME_API_REQUEST_TIMEOUT is required")
	}

	if cfg.AdminAPI.BaseURL == "" {
		return errors.New("ADMIN_API_BASE_URL is required")
	}
	if cfg.AdminAPI.RequestTimeout == time.Duration(0) {
		return errors.New("ADMIN_API_REQUEST_TIMEOUT is required")
	}

	if cfg.Realtime.URL == "" {
		return errors.New("REALTIME_URL is required")
	}
	if cfg.Realtime.PositionLimitQPS == 0 {
		return errors.New("REALTIME_POSITION_LIMIT_QPS is required")
	}
	if cfg.Realtime.PositionLimitBurst == 0 {
		return errors.New("REALTIME_POSITION_LIMIT_BURST is required")
	}

	if cfg.Game.UserID == 0 {
		return errors.New("GAME_USER_ID is required")
	}
	if cfg.Game.SearchRadiusKm == 0 {
		return errors.New("GAME_SEARCH_RADIUS_KM is required")
	}
	if cfg.Game.SearchStartDelay == time.Duration(0) {
		return errors.New("GAME_SEARCH_START_DELAY is required")
	}
	if cfg.Game.ZonePollInterval == time.Duration(0) {
		return errors.New("GAME_ZONE_POLL_INTERVAL is required")
	}

	if cfg.Store.StateFilePath == "" {
		return errors.New("STATE_FILE_PATH is required")
	}

	if cfg.Tasks.HeartbeatInterval == time.Duration(0) {
		return errors.New("TASKS_HEARTBEAT_INTERVAL is required")
	}

	if cfg.GPS.SpeedKmh == 0 {
		return errors.New("GPS_SPEED_KMH is required")
	}
	if cfg.GPS.UpdateInterval == time.Duration(0) {
		return errors.New("GPS_UPDATE_INTERVAL is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
