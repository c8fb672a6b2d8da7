package entities

import "time"

type Position struct {
	Lat       float64
	Lng       float64
	Accuracy  float64 // метры
	Timestamp time.Time
}

type AccuracyQuality string

const (
	AccuracyExcellent AccuracyQuality = "excellent"
	AccuracyGood      AccuracyQuality = "good"
	AccuracyFair      AccuracyQuality = "fair"
	AccuracyPoor      AccuracyQuality = "poor"
)

const (
	excellentAccuracyMeters = 5
	goodAccuracyMeters      = 15
	fairAccuracyMeters      = 50
)

func (p Position) Quality() AccuracyQuality {
	switch {
	case p.Accuracy <= excellentAccuracyMeters:
		return AccuracyExcellent
	case p.Accuracy <= goodAccuracyMeters:
		return AccuracyGood
	case p.Accuracy <= fairAccuracyMeters:
		return AccuracyFair
	default:
		return AccuracyPoor
	}
}

func (q AccuracyQuality) String() string {
	return string(q)
}
