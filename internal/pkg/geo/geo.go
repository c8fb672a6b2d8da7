package geo

import (
	"fmt"
	"math"
)

// Радиус Земли в километрах.
const earthRadiusKm = 6371.0

// DistanceKm считает расстояние между двумя точками по формуле гаверсинуса.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceKm(lat1, lng1, lat2, lng2) * 1000
}

// WithinRadius проверяет, попадает ли точка в радиус (в метрах) от центра.
func WithinRadius(centerLat, centerLng, pointLat, pointLng, radiusMeters float64) bool {
	return DistanceMeters(centerLat, centerLng, pointLat, pointLng) <= radiusMeters
}

// Bearing возвращает азимут от первой точки ко второй, градусы 0-360.
func Bearing(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := degToRad(lat1)
	lat2Rad := degToRad(lat2)
	dLngRad := degToRad(lng2 - lng1)

	y := math.Sin(dLngRad) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) -
		math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLngRad)

	bearing := radToDeg(math.Atan2(y, x))
	return math.Mod(bearing+360, 360)
}

var compassDirections = []string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// CompassDirection переводит азимут в текстовое направление, сектор 22.5°.
func CompassDirection(bearing float64) string {
	index := int(math.Round(bearing/22.5)) % len(compassDirections)
	return compassDirections[index]
}

// BoundingBox возвращает ограничивающий прямоугольник (minLat, minLng, maxLat, maxLng)
// для грубой фильтрации точек перед точным расчетом расстояния.
func BoundingBox(centerLat, centerLng, radiusKm float64) (float64, float64, float64, float64) {
	// ~111 км на градус широты
	latDelta := radiusKm / 111.0
	lngDelta := radiusKm / (111.0 * math.Cos(degToRad(centerLat)))

	return centerLat - latDelta, centerLng - lngDelta, centerLat + latDelta, centerLng + lngDelta
}

func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// FormatDistance форматирует расстояние для UI: метры до километра, дальше -- км.
func FormatDistance(distanceKm float64) string {
	if distanceKm < 1 {
		return fmt.Sprintf("%d м", int(math.Round(distanceKm*1000)))
	}
	return fmt.Sprintf("%.1f км", distanceKm)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
