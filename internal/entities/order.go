package entities

import "time"

// Order -- клиентская копия заказа, авторитетная версия живет на сервере.
type Order struct {
	ID         string
	Pickup     PickupPoint
	Dropoff    DropoffPoint
	DistanceKm float64
	TimerSec   int
	Amount     float64
	Status     OrderStatusType

	// PickupTime определяет фазу доставки: nil -- курьер едет за заказом,
	// не nil -- заказ на руках, курьер едет к получателю.
	PickupTime *time.Time
}

type PickupPoint struct {
	Lat  float64
	Lng  float64
	Name string
}

type DropoffPoint struct {
	Lat     float64
	Lng     float64
	Address string
}

type OrderStatusType string

const (
	OrderOffered   OrderStatusType = "offered"
	OrderActive    OrderStatusType = "active"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (o *Order) PickedUp() bool {
	return o != nil && o.PickupTime != nil
}

// Payout -- разбивка выплаты, приходит в ответе на deliver.
type Payout struct {
	Total float64
	Bonus float64
}

// DeliveryResult -- итог успешной доставки.
type DeliveryResult struct {
	NewBalance float64
	Payout     Payout
}

// AccountStatus -- серверное состояние аккаунта для восстановления сессии.
type AccountStatus struct {
	Balance     float64
	ActiveOrder *Order
}
