package entities

import "time"

// Session -- состояние курьера на этом устройстве. Мутируется только через
// методы lifecycle-контроллера, никогда напрямую.
type Session struct {
	UserID       int64
	OnShift      bool
	Searching    bool
	CurrentOrder *Order
	Balance      float64
}

// Valid проверяет инварианты сессии:
// searching => onShift, currentOrder != nil => onShift,
// и нельзя искать заказ уже имея заказ на руках.
func (s Session) Valid() bool {
	if s.Searching && !s.OnShift {
		return false
	}
	if s.CurrentOrder != nil && !s.OnShift {
		return false
	}
	if s.Searching && s.CurrentOrder != nil {
		return false
	}
	return true
}

func (s Session) HoldsOrder() bool {
	return s.CurrentOrder != nil
}

// SessionSnapshot -- то, что уходит на диск (аналог localStorage браузера).
type SessionSnapshot struct {
	IsOnShift    bool      `json:"isOnShift"`
	IsSearching  bool      `json:"isSearching"`
	UserID       int64     `json:"userId"`
	CurrentOrder *Order    `json:"currentOrder,omitempty"`
	DeviceID     string    `json:"deviceId"`
	GPSGranted   bool      `json:"gpsGranted"`
	LastSaved    time.Time `json:"lastSaved"`
}
