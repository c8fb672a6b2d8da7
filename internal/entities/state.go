package entities

// LifecycleState -- состояния конечного автомата смены.
type LifecycleState string

const (
	StateUnsupported   LifecycleState = "unsupported" // терминальное: геолокация недоступна
	StateRequestingGPS LifecycleState = "requesting_gps"
	StateStartShift    LifecycleState = "start_shift"
	StateSearching     LifecycleState = "searching"
	StateToPickup      LifecycleState = "to_pickup"
	StateAtPickup      LifecycleState = "at_pickup"
	StateToDropoff     LifecycleState = "to_dropoff"
	StateAtDropoff     LifecycleState = "at_dropoff"
	StateEndShift      LifecycleState = "end_shift"
)

func (s LifecycleState) String() string {
	return string(s)
}

// PostShift сообщает, началась ли смена в данном состоянии.
func (s LifecycleState) PostShift() bool {
	switch s {
	case StateSearching, StateToPickup, StateAtPickup, StateToDropoff, StateAtDropoff, StateEndShift:
		return true
	default:
		return false
	}
}
