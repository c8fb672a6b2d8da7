package entities

// ZoneStatus -- результат серверной проверки зон. Эфемерный, не персистится.
// can_pickup/can_deliver -- серверное решение, а не просто геометрия:
// сервер может добавлять свои проверки поверх радиуса.
type ZoneStatus struct {
	InPickupZone  bool
	InDropoffZone bool
	CanPickup     bool
	CanDeliver    bool

	// Только для отображения в UI.
	DistanceToPickupMeters  float64
	DistanceToDropoffMeters float64
}
