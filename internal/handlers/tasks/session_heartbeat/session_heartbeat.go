package session_heartbeat

import (
	"context"
	"time"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

type StateSource interface {
	State() entities.LifecycleState
}

type SessionReader interface {
	Session() entities.Session
}

// SessionHeartbeat периодически пишет в лог текущее состояние агента.
// Единственный способ увидеть историю смены без обращения к /state.
type SessionHeartbeat struct {
	log      logger.Logger
	state    StateSource
	session  SessionReader
	interval time.Duration
}

func New(log logger.Logger, state StateSource, session SessionReader, interval time.Duration) *SessionHeartbeat {
	return &SessionHeartbeat{
		log:      log,
		state:    state,
		session:  session,
		interval: interval,
	}
}

func (h *SessionHeartbeat) TTL() time.Duration {
	return h.interval
}

func (h *SessionHeartbeat) Do(_ context.Context) error {
	session := h.session.Session()

	fields := []logger.Field{
		logger.NewField("state", h.state.State().String()),
		logger.NewField("on_shift", session.OnShift),
		logger.NewField("searching", session.Searching),
		logger.NewField("balance", session.Balance),
	}
	if session.CurrentOrder != nil {
		fields = append(fields, logger.NewField("order_id", session.CurrentOrder.ID))
	}

	h.log.With(fields...).Info("session heartbeat")
	return nil
}

func (h *SessionHeartbeat) Info() string {
	return "session heartbeat"
}
