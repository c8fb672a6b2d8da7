package game

import (
	"time"

	"simulator/internal/entities"
)

// isoformat сервера приходит и с зоной, и без.
var pickupTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func toDomainOrder(dto *orderDTO) *entities.Order {
	if dto == nil {
		return nil
	}

	order := &entities.Order{
		ID:         dto.ID,
		Status:     entities.OrderStatusType(dto.Status),
		DistanceKm: dto.DistanceKm,
		TimerSec:   dto.TimerSec,
		Amount:     dto.Amount,
		Pickup: entities.PickupPoint{
			Lat:  dto.Pickup.Lat,
			Lng:  dto.Pickup.Lng,
			Name: dto.Pickup.Name,
		},
		Dropoff: entities.DropoffPoint{
			Lat:     dto.Dropoff.Lat,
			Lng:     dto.Dropoff.Lng,
			Address: dto.Dropoff.Address,
		},
	}

	if dto.PickupTime != nil && *dto.PickupTime != "" {
		for _, layout := range pickupTimeLayouts {
			if t, err := time.Parse(layout, *dto.PickupTime); err == nil {
				utc := t.UTC()
				order.PickupTime = &utc
				break
			}
		}
	}

	return order
}

func toDomainZones(dto zonesDTO) entities.ZoneStatus {
	return entities.ZoneStatus{
		InPickupZone:            dto.InPickupZone,
		InDropoffZone:           dto.InDropoffZone,
		CanPickup:               dto.CanPickup,
		CanDeliver:              dto.CanDeliver,
		DistanceToPickupMeters:  dto.DistanceToPickupMeters,
		DistanceToDropoffMeters: dto.DistanceToDropoffMeters,
	}
}
