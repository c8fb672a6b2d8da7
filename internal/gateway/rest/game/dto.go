package game

type pointDTO struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name,omitempty"`
}

type dropoffDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type orderDTO struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Pickup     pointDTO   `json:"pickup"`
	Dropoff    dropoffDTO `json:"dropoff"`
	Amount     float64    `json:"amount"`
	DistanceKm float64    `json:"distance_km"`
	TimerSec   int        `json:"timer_seconds"`

	// isoformat, у сервера может не быть зоны -- парсится в converters
	PickupTime *string `json:"pickup_time"`
}

type shiftRequest struct {
	UserID int64 `json:"user_id"`
}

type acceptRequest struct {
	UserID  int64  `json:"user_id"`
	OrderID string `json:"order_id"`
}

type cancelRequest struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

type positionRequest struct {
	UserID   int64   `json:"user_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
}

type baseResponse struct {
	Error string `json:"error,omitempty"`
}

type acceptResponse struct {
	Error string    `json:"error,omitempty"`
	Order *orderDTO `json:"order"`
}

type pickupResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Order   *orderDTO `json:"order"`
}

type payoutDTO struct {
	Total float64 `json:"total"`
	Bonus float64 `json:"bonus,omitempty"`
}

type deliverResponse struct {
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	NewBalance float64   `json:"new_balance"`
	Payout     payoutDTO `json:"payout"`
}

type zonesDTO struct {
	InPickupZone            bool    `json:"in_pickup_zone"`
	InDropoffZone           bool    `json:"in_dropoff_zone"`
	CanPickup               bool    `json:"can_pickup"`
	CanDeliver              bool    `json:"can_deliver"`
	DistanceToPickupMeters  float64 `json:"distance_to_pickup_meters"`
	DistanceToDropoffMeters float64 `json:"distance_to_dropoff_meters"`
}

type positionResponse struct {
	Error string   `json:"error,omitempty"`
	Zones zonesDTO `json:"zones"`
}

type statusResponse struct {
	Error string `json:"error,omitempty"`
	User  struct {
		Balance float64 `json:"balance"`
	} `json:"user"`
	ActiveOrder *orderDTO `json:"active_order"`
}
