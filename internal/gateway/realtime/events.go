package realtime

import "encoding/json"

// Имена событий совпадают с протоколом игрового сервера.
const (
	// исходящие
	EventUserLogin      = "user_login"
	EventStartSearch    = "start_order_search"
	EventStopSearch     = "stop_order_search"
	EventUpdatePosition = "update_position"

	// входящие
	EventSearchStarted  = "search_started"
	EventSearchProgress = "search_progress"
	EventOrderFound     = "order_found"
	EventNoOrdersFound  = "no_orders_found"
	EventSearchError    = "search_error"
)

// envelope -- кадр канала: имя события плюс произвольный JSON-payload.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type userLoginPayload struct {
	UserID int64 `json:"user_id"`
}

type startSearchPayload struct {
	RadiusKm float64 `json:"radius_km"`
}

type updatePositionPayload struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}

// SearchProgress -- прогресс серверного поиска заказа.
type SearchProgress struct {
	Elapsed int `json:"elapsed"`
	Total   int `json:"total"`
}

type messagePayload struct {
	Message string `json:"message"`
}

type orderFoundPayload struct {
	Success bool      `json:"success"`
	Order   *orderDTO `json:"order"`
}

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
}
