package admin

type paginationDTO struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type userDTO struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Balance      float64   `json:"balance"`
	IsOnline     bool      `json:"is_online"`
	LastActivity *string   `json:"last_activity"`
	ActiveOrder  *orderDTO `json:"active_order"`
}

type orderDTO struct {
	ID         string  `json:"id"`
	UserID     int64   `json:"user_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	DistanceKm float64 `json:"distance_km"`
	CreatedAt  *string `json:"created_at"`
}

type reportDTO struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Type          string  `json:"report_type"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	AdminResponse string  `json:"admin_response"`
	CreatedAt     *string `json:"created_at"`
}

type usersResponse struct {
	Users      []userDTO     `json:"users"`
	Pagination paginationDTO `json:"pagination"`
	Error      string        `json:"error"`
}

type ordersResponse struct {
	Orders     []orderDTO    `json:"orders"`
	Pagination paginationDTO `json:"pagination"`
	Error      string        `json:"error"`
}

type reportsResponse struct {
	Reports    []reportDTO   `json:"reports"`
	Pagination paginationDTO `json:"pagination"`
	Error      string        `json:"error"`
}

type reportStatusRequest struct {
	Status        string `json:"status"`
	AdminResponse string `json:"admin_response,omitempty"`
}

type reportStatusResponse struct {
	Success bool       `json:"success"`
	Report  *reportDTO `json:"report"`
	Error   string     `json:"error"`
}

type gameConfigDTO struct {
	BasePayment      float64 `json:"base_payment"`
	PickupFee        float64 `json:"pickup_fee"`
	DropoffFee       float64 `json:"dropoff_fee"`
	DistanceRate     float64 `json:"distance_rate"`
	OnTimeBonus      float64 `json:"on_time_bonus"`
	PickupRadius     float64 `json:"pickup_radius"`
	DropoffRadius    float64 `json:"dropoff_radius"`
	DeliverySpeedKmh float64 `json:"delivery_speed_kmh"`
	DeliveryBaseTime int     `json:"delivery_base_time"`
	MaxGPSAccuracy   float64 `json:"max_gps_accuracy"`
}

type configResponse struct {
	GameConfig gameConfigDTO `json:"game_config"`
	Error      string        `json:"error"`
}

type configChangeDTO struct {
	Param    string  `json:"param"`
	OldValue float64 `json:"old_value"`
	NewValue float64 `json:"new_value"`
}

type configUpdateResponse struct {
	Success       bool              `json:"success"`
	UpdatedParams []configChangeDTO `json:"updated_params"`
	NewConfig     gameConfigDTO     `json:"new_config"`
	Error         string            `json:"error"`
}

type analyticsResponse struct {
	PeriodDays int `json:"period_days"`
	Users      struct {
		Total     int64 `json:"total"`
		Online    int64 `json:"online"`
		NewPeriod int64 `json:"new_period"`
	} `json:"users"`
	Orders struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
		Cancelled int64 `json:"cancelled"`
	} `json:"orders"`
	RevenuePeriod float64 `json:"revenue_period"`
	Error         string  `json:"error"`
}
