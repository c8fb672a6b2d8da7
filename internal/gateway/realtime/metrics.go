package realtime

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "realtime_events_total",
			Help: "Total number of realtime events by name and direction",
		},
		[]string{"event", "direction"},
	)

	ReconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realtime_reconnects_total",
			Help: "Total number of websocket reconnects",
		},
	)

	PositionsThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "realtime_positions_throttled_total",
			Help: "Outbound position updates dropped by the rate limiter",
		},
	)
)
