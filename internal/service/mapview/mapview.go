// Package mapview собирает из состояния контроллера, сессии и позиции
// модель отображения: маркеры, зоны, подпись основной кнопки и подсказки
// расстояний. Сама отрисовка карты остается за потребителем.
package mapview

import (
	"simulator/internal/entities"
	"simulator/internal/pkg/geo"
)

type View struct {
	State         entities.LifecycleState `json:"state"`
	PrimaryAction string                  `json:"primaryAction"`
	ActionEnabled bool                    `json:"actionEnabled"`
	OnShift       bool                    `json:"onShift"`
	Searching     bool                    `json:"searching"`
	Balance       float64                 `json:"balance"`
	Position      *PositionView           `json:"position,omitempty"`
	Order         *OrderView              `json:"order,omitempty"`
	Zones         *ZonesView              `json:"zones,omitempty"`
}

type PositionView struct {
	Lat      float64                  `json:"lat"`
	Lng      float64                  `json:"lng"`
	Accuracy float64                  `json:"accuracy"`
	Quality  entities.AccuracyQuality `json:"quality"`
}

// OrderView -- заказ глазами карты: куда сейчас ехать и как далеко.
type OrderView struct {
	ID             string  `json:"id"`
	PickupName     string  `json:"pickupName"`
	DropoffAddress string  `json:"dropoffAddress"`
	Amount         float64 `json:"amount"`
	DistanceKm     float64 `json:"distanceKm"`
	PickedUp       bool    `json:"pickedUp"`

	TargetLat        float64 `json:"targetLat"`
	TargetLng        float64 `json:"targetLng"`
	DistanceToTarget string  `json:"distanceToTarget,omitempty"`
	Direction        string  `json:"direction,omitempty"`
}

type ZonesView struct {
	InPickupZone      bool   `json:"inPickupZone"`
	InDropoffZone     bool   `json:"inDropoffZone"`
	CanPickup         bool   `json:"canPickup"`
	CanDeliver        bool   `json:"canDeliver"`
	DistanceToPickup  string `json:"distanceToPickup,omitempty"`
	DistanceToDropoff string `json:"distanceToDropoff,omitempty"`
}

type Service struct {
	lifecycle LifecycleSource
	session   SessionReader
	positions PositionReader
}

func New(lifecycle LifecycleSource, session SessionReader, positions PositionReader) *Service {
	return &Service{
		lifecycle: lifecycle,
		session:   session,
		positions: positions,
	}
}

// Build собирает снимок модели отображения на текущий момент.
func (s *Service) Build() View {
	state := s.lifecycle.State()
	session := s.session.Session()

	view := View{
		State:         state,
		PrimaryAction: primaryActionLabel(state),
		ActionEnabled: actionEnabled(state),
		OnShift:       session.OnShift,
		Searching:     session.Searching,
		Balance:       session.Balance,
	}

	pos, hasPos := s.positions.Current()
	if hasPos {
		quality, _ := s.positions.Quality()
		view.Position = &PositionView{
			Lat:      pos.Lat,
			Lng:      pos.Lng,
			Accuracy: pos.Accuracy,
			Quality:  quality,
		}
	}

	if order := session.CurrentOrder; order != nil {
		view.Order = buildOrderView(order, pos, hasPos)
		view.Zones = buildZonesView(s.lifecycle.Zones())
	}

	return view
}

func buildOrderView(order *entities.Order, pos entities.Position, hasPos bool) *OrderView {
	targetLat, targetLng := order.Pickup.Lat, order.Pickup.Lng
	if order.PickedUp() {
		targetLat, targetLng = order.Dropoff.Lat, order.Dropoff.Lng
	}

	view := &OrderView{
		ID:             order.ID,
		PickupName:     order.Pickup.Name,
		DropoffAddress: order.Dropoff.Address,
		Amount:         order.Amount,
		DistanceKm:     order.DistanceKm,
		PickedUp:       order.PickedUp(),
		TargetLat:      targetLat,
		TargetLng:      targetLng,
	}

	if hasPos {
		meters := geo.DistanceMeters(pos.Lat, pos.Lng, targetLat, targetLng)
		view.DistanceToTarget = geo.FormatDistance(meters)
		view.Direction = geo.CompassDirection(geo.Bearing(pos.Lat, pos.Lng, targetLat, targetLng))
	}

	return view
}

func buildZonesView(zones entities.ZoneStatus) *ZonesView {
	view := &ZonesView{
		InPickupZone:  zones.InPickupZone,
		InDropoffZone: zones.InDropoffZone,
		CanPickup:     zones.CanPickup,
		CanDeliver:    zones.CanDeliver,
	}
	if zones.DistanceToPickupMeters > 0 {
		view.DistanceToPickup = geo.FormatDistance(zones.DistanceToPickupMeters)
	}
	if zones.DistanceToDropoffMeters > 0 {
		view.DistanceToDropoff = geo.FormatDistance(zones.DistanceToDropoffMeters)
	}
	return view
}

func primaryActionLabel(state entities.LifecycleState) string {
	switch state {
	case entities.StateUnsupported:
		return "Геолокация недоступна"
	case entities.StateRequestingGPS:
		return "Разрешить геолокацию"
	case entities.StateStartShift:
		return "Начать смену"
	case entities.StateSearching:
		return "Остановить поиск"
	case entities.StateToPickup:
		return "Едем к точке забора"
	case entities.StateAtPickup:
		return "Забрать заказ"
	case entities.StateToDropoff:
		return "Везем заказ"
	case entities.StateAtDropoff:
		return "Доставить заказ"
	case entities.StateEndShift:
		return "Завершить смену"
	default:
		return ""
	}
}

func actionEnabled(state entities.LifecycleState) bool {
	switch state {
	case entities.StateUnsupported, entities.StateToPickup, entities.StateToDropoff:
		return false
	default:
		return true
	}
}
