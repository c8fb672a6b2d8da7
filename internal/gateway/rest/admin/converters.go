package admin

import (
	"time"

	"simulator/internal/entities"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseTimestamp(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

func toDomainUser(dto userDTO) entities.AdminUser {
	user := entities.AdminUser{
		ID:           dto.ID,
		Username:     dto.Username,
		Email:        dto.Email,
		Balance:      dto.Balance,
		Online:       dto.IsOnline,
		LastActivity: parseTimestamp(dto.LastActivity),
	}
	if dto.ActiveOrder != nil {
		order := toDomainOrder(*dto.ActiveOrder)
		user.ActiveOrder = &entities.Order{
			ID:         order.ID,
			Status:     order.Status,
			Amount:     order.Amount,
			DistanceKm: order.DistanceKm,
		}
	}
	return user
}

func toDomainOrder(dto orderDTO) entities.AdminOrder {
	return entities.AdminOrder{
		ID:         dto.ID,
		UserID:     dto.UserID,
		Status:     entities.OrderStatusType(dto.Status),
		Amount:     dto.Amount,
		DistanceKm: dto.DistanceKm,
		CreatedAt:  parseTimestamp(dto.CreatedAt),
	}
}

func toDomainReport(dto reportDTO) entities.Report {
	return entities.Report{
		ID:            dto.ID,
		UserID:        dto.UserID,
		Type:          dto.Type,
		Priority:      dto.Priority,
		Status:        entities.ReportStatusType(dto.Status),
		Message:       dto.Message,
		AdminResponse: dto.AdminResponse,
		CreatedAt:     parseTimestamp(dto.CreatedAt),
	}
}

func toDomainPagination(dto paginationDTO) entities.Pagination {
	return entities.Pagination{
		Page:    dto.Page,
		PerPage: dto.PerPage,
		Total:   dto.Total,
		Pages:   dto.Pages,
		HasNext: dto.HasNext,
		HasPrev: dto.HasPrev,
	}
}

func toDomainConfig(dto gameConfigDTO) entities.GameConfig {
	return entities.GameConfig{
		BasePayment:      dto.BasePayment,
		PickupFee:        dto.PickupFee,
		DropoffFee:       dto.DropoffFee,
		DistanceRate:     dto.DistanceRate,
		OnTimeBonus:      dto.OnTimeBonus,
		PickupRadius:     dto.PickupRadius,
		DropoffRadius:    dto.DropoffRadius,
		DeliverySpeedKmh: dto.DeliverySpeedKmh,
		DeliveryBaseTime: dto.DeliveryBaseTime,
		MaxGPSAccuracy:   dto.MaxGPSAccuracy,
	}
}
