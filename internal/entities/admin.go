package entities

import "time"

// AdminUser -- пользователь глазами админки.
type AdminUser struct {
	ID           int64
	Username     string
	Email        string
	Balance      float64
	Online       bool
	LastActivity *time.Time
	ActiveOrder  *Order
}

// AdminOrder -- заказ в админских списках, с привязкой к пользователю.
type AdminOrder struct {
	ID         string
	UserID     int64
	Status     OrderStatusType
	Amount     float64
	DistanceKm float64
	CreatedAt  *time.Time
}

type ReportStatusType string

const (
	ReportPending   ReportStatusType = "pending"
	ReportInReview  ReportStatusType = "in_review"
	ReportResolved  ReportStatusType = "resolved"
	ReportDismissed ReportStatusType = "dismissed"
)

// Report -- жалоба пользователя.
type Report struct {
	ID            int64
	UserID        int64
	Type          string
	Priority      string
	Status        ReportStatusType
	Message       string
	AdminResponse string
	CreatedAt     *time.Time
}

// Pagination -- серверная пагинация админских списков.
type Pagination struct {
	Page    int
	PerPage int
	Total   int64
	Pages   int
	HasNext bool
	HasPrev bool
}

type UserPage struct {
	Users      []AdminUser
	Pagination Pagination
}

type OrderPage struct {
	Orders     []AdminOrder
	Pagination Pagination
}

type ReportPage struct {
	Reports    []Report
	Pagination Pagination
}

// GameConfig -- настройки игровой экономики и геозон.
type GameConfig struct {
	BasePayment      float64
	PickupFee        float64
	DropoffFee       float64
	DistanceRate     float64
	OnTimeBonus      float64
	PickupRadius     float64
	DropoffRadius    float64
	DeliverySpeedKmh float64
	DeliveryBaseTime int
	MaxGPSAccuracy   float64
}

// ConfigChange -- одно примененное изменение настройки.
type ConfigChange struct {
	Param    string
	OldValue float64
	NewValue float64
}

// AnalyticsOverview -- сводка по системе за период.
type AnalyticsOverview struct {
	PeriodDays      int
	TotalUsers      int64
	OnlineUsers     int64
	NewUsersPeriod  int64
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	RevenuePeriod   float64
}
