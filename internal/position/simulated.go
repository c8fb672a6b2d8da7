package position

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"simulator/internal/entities"
	"simulator/internal/pkg/geo"
)

const (
	minSimAccuracyMeters = 3
	maxSimAccuracyMeters = 40

	// Новая путевая точка выбирается в пределах этого радиуса.
	waypointRadiusKm = 1.5
)

// SimulatedProvider изображает API геолокации устройства: ходит по городу
// от точки к точке с заданной скоростью и шумом точности. Используется
// бинарником симулятора и тестами вместо реального устройства.
type SimulatedProvider struct {
	speedKmh float64
	interval time.Duration
	rng      *rand.Rand

	mu      sync.Mutex
	lat     float64
	lng     float64
	destLat float64
	destLng float64
	fixes   chan entities.Position
	done    chan struct{}
}

func NewSimulatedProvider(startLat, startLng, speedKmh float64, interval time.Duration, seed int64) *SimulatedProvider {
	p := &SimulatedProvider{
		speedKmh: speedKmh,
		interval: interval,
		rng:      rand.New(rand.NewSource(seed)),
		lat:      startLat,
		lng:      startLng,
	}
	p.pickWaypointLocked()
	return p
}

func (p *SimulatedProvider) Supported() bool {
	return true
}

func (p *SimulatedProvider) RequestPermission(_ context.Context, _ bool) (entities.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fixLocked(), nil
}

func (p *SimulatedProvider) StartWatch(ctx context.Context) (<-chan entities.Position, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fixes != nil {
		return p.fixes, nil
	}

	fixes := make(chan entities.Position, 16)
	done := make(chan struct{})
	p.fixes = fixes
	p.done = done

	go p.walk(ctx, fixes, done)
	return fixes, nil
}

func (p *SimulatedProvider) StopWatch() {
	p.mu.Lock()
	done := p.done
	p.done = nil
	p.fixes = nil
	p.mu.Unlock()

	if done != nil {
		close(done)
	}
}

func (p *SimulatedProvider) walk(ctx context.Context, fixes chan<- entities.Position, done <-chan struct{}) {
	defer close(fixes)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case <-ticker.C:
			p.mu.Lock()
			p.advanceLocked()
			fix := p.fixLocked()
			p.mu.Unlock()

			select {
			case fixes <- fix:
			default:
				// медленный потребитель, фикс пропускаем
			}
		}
	}
}

func (p *SimulatedProvider) advanceLocked() {
	stepKm := p.speedKmh * p.interval.Hours()
	remainingKm := geo.DistanceKm(p.lat, p.lng, p.destLat, p.destLng)

	if remainingKm <= stepKm {
		p.lat = p.destLat
		p.lng = p.destLng
		p.pickWaypointLocked()
		return
	}

	frac := stepKm / remainingKm
	p.lat += (p.destLat - p.lat) * frac
	p.lng += (p.destLng - p.lng) * frac
}

func (p *SimulatedProvider) pickWaypointLocked() {
	bearing := p.rng.Float64() * 2 * math.Pi
	distKm := waypointRadiusKm * (0.3 + 0.7*p.rng.Float64())

	latDelta := distKm / 111.0 * math.Cos(bearing)
	lngDelta := distKm / (111.0 * math.Cos(p.lat*math.Pi/180)) * math.Sin(bearing)

	p.destLat = p.lat + latDelta
	p.destLng = p.lng + lngDelta
}

func (p *SimulatedProvider) fixLocked() entities.Position {
	accuracy := minSimAccuracyMeters + p.rng.Float64()*(maxSimAccuracyMeters-minSimAccuracyMeters)
	return entities.Position{
		Lat:       p.lat,
		Lng:       p.lng,
		Accuracy:  accuracy,
		Timestamp: time.Now().UTC(),
	}
}
