package mapview

import "simulator/internal/entities"

type LifecycleSource interface {
	State() entities.LifecycleState
	Zones() entities.ZoneStatus
}

type SessionReader interface {
	Session() entities.Session
}

type PositionReader interface {
	Current() (entities.Position, bool)
	Quality() (entities.AccuracyQuality, bool)
}
