package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"simulator/internal/entities"
	"simulator/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192

	sendBuffer = 64

	reconnectInitialInterval = 500 * time.Millisecond
	reconnectMaxInterval     = 30 * time.Second
)

// Channel -- двунаправленный событийный канал до игрового сервера.
// Переподключается сам (как socket.io-клиент оригинальной игры) и после
// реконнекта заново проигрывает login и активный поиск. Порядок между REST
// ответами и событиями канала нигде не гарантируется.
type Channel struct {
	log     handlerLogger
	url     string
	limiter rateLimiter

	mu       sync.Mutex
	send     chan envelope
	handlers map[string][]func(json.RawMessage)

	// состояние для replay после реконнекта
	loggedInUser   *int64
	searchRadiusKm *float64
}

func New(url string, limiter rateLimiter, log handlerLogger) *Channel {
	return &Channel{
		log:      log.With(logger.NewField("component", "realtime_channel")),
		url:      url,
		limiter:  limiter,
		send:     make(chan envelope, sendBuffer),
		handlers: make(map[string][]func(json.RawMessage)),
	}
}

// Run держит соединение до отмены контекста: dial с экспоненциальным
// backoff, затем read/write pump, при обрыве -- реконнект и replay.
func (c *Channel) Run(ctx context.Context) error {
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			// backoff исчерпан только отменой контекста
			return fmt.Errorf("dial realtime server: %w", err)
		}

		c.replayState()
		c.pump(ctx, conn)

		select {
		case <-ctx.Done():
			return nil
		default:
			ReconnectsTotal.Inc()
			c.log.Warn("realtime connection lost, reconnecting")
		}
	}
}

// On подписывает обработчик на событие. Обработчиков может быть несколько,
// подписка не затирает предыдущие.
func (c *Channel) On(event string, fn func(json.RawMessage)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = append(c.handlers[event], fn)
}

// OnSearchStarted подписывает обработчик начала поиска.
func (c *Channel) OnSearchStarted(fn func()) {
	c.On(EventSearchStarted, func(json.RawMessage) { fn() })
}

func (c *Channel) OnSearchProgress(fn func(progress SearchProgress)) {
	c.On(EventSearchProgress, func(raw json.RawMessage) {
		var progress SearchProgress
		if err := json.Unmarshal(raw, &progress); err != nil {
			c.log.Warn("malformed search_progress payload", logger.NewField("error", err))
			return
		}
		fn(progress)
	})
}

func (c *Channel) OnOrderFound(fn func(order entities.Order)) {
	c.On(EventOrderFound, func(raw json.RawMessage) {
		var payload orderFoundPayload
		if err := json.Unmarshal(raw, &payload); err != nil || payload.Order == nil {
			c.log.Warn("malformed order_found payload", logger.NewField("error", err))
			return
		}
		fn(toDomainOrder(payload.Order))
	})
}

func (c *Channel) OnNoOrdersFound(fn func(message string)) {
	c.onMessageEvent(EventNoOrdersFound, fn)
}

func (c *Channel) OnSearchError(fn func(message string)) {
	c.onMessageEvent(EventSearchError, fn)
}

// Login регистрирует сессию на сервере. Запоминается для replay.
func (c *Channel) Login(userID int64) {
	c.mu.Lock()
	c.loggedInUser = &userID
	c.mu.Unlock()

	c.enqueue(EventUserLogin, userLoginPayload{UserID: userID})
}

// StartSearch запускает серверный поиск заказа.
func (c *Channel) StartSearch(radiusKm float64) {
	c.mu.Lock()
	c.searchRadiusKm = &radiusKm
	c.mu.Unlock()

	c.enqueue(EventStartSearch, startSearchPayload{RadiusKm: radiusKm})
}

func (c *Channel) StopSearch() {
	c.mu.Lock()
	c.searchRadiusKm = nil
	c.mu.Unlock()

	c.enqueue(EventStopSearch, nil)
}

// SendPosition отправляет позицию, если пропускает троттлер. Потерянный
// апдейт не страшен: следующий фикс придет через секунды.
func (c *Channel) SendPosition(pos entities.Position) {
	if !c.limiter.Allow() {
		PositionsThrottledTotal.Inc()
		return
	}

	c.enqueue(EventUpdatePosition, updatePositionPayload{
		Lat:       pos.Lat,
		Lng:       pos.Lng,
		Accuracy:  pos.Accuracy,
		Timestamp: pos.Timestamp.Unix(),
	})
}

func (c *Channel) dial(ctx context.Context) (*websocket.Conn, error) {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(reconnectInitialInterval),
		backoff.WithMaxInterval(reconnectMaxInterval),
		backoff.WithMaxElapsedTime(0),
	)

	var conn *websocket.Conn
	operation := func() error {
		dialCtx, cancel := context.WithTimeout(ctx, writeWait)
		defer cancel()

		var err error
		conn, _, err = websocket.DefaultDialer.DialContext(dialCtx, c.url, nil)
		if err != nil {
			c.log.Warn("realtime dial failed",
				logger.NewField("url", c.url),
				logger.NewField("error", err),
			)
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return conn, nil
}

// replayState заново отправляет login и активный поиск после реконнекта.
func (c *Channel) replayState() {
	c.mu.Lock()
	user := c.loggedInUser
	radius := c.searchRadiusKm
	c.mu.Unlock()

	if user != nil {
		c.enqueue(EventUserLogin, userLoginPayload{UserID: *user})
	}
	if radius != nil {
		c.enqueue(EventStartSearch, startSearchPayload{RadiusKm: *radius})
	}
}

// pump гоняет кадры до обрыва соединения или отмены контекста.
func (c *Channel) pump(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	pumpCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writePump(pumpCtx, conn)
	c.readPump(cancel, conn)
}

func (c *Channel) writePump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case frame := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				c.log.Warn("realtime write failed",
					logger.NewField("event", frame.Event),
					logger.NewField("error", err),
				)
				return
			}
			EventsTotal.WithLabelValues(frame.Event, "out").Inc()
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Channel) readPump(cancel context.CancelFunc, conn *websocket.Conn) {
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("realtime read failed", logger.NewField("error", err))
			}
			return
		}

		var frame envelope
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.log.Warn("malformed realtime frame", logger.NewField("error", err))
			continue
		}

		EventsTotal.WithLabelValues(frame.Event, "in").Inc()
		c.dispatch(frame)
	}
}

func (c *Channel) dispatch(frame envelope) {
	c.mu.Lock()
	handlers := make([]func(json.RawMessage), len(c.handlers[frame.Event]))
	copy(handlers, c.handlers[frame.Event])
	c.mu.Unlock()

	for _, fn := range handlers {
		fn(frame.Data)
	}
}

func (c *Channel) enqueue(event string, payload interface{}) {
	frame := envelope{Event: event}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			c.log.Error("marshal outbound event",
				logger.NewField("event", event),
				logger.NewField("error", err),
			)
			return
		}
		frame.Data = raw
	}

	select {
	case c.send <- frame:
	default:
		c.log.Warn("outbound buffer full, dropping event", logger.NewField("event", event))
	}
}

func (c *Channel) onMessageEvent(event string, fn func(message string)) {
	c.On(event, func(raw json.RawMessage) {
		var payload messagePayload
		if err := json.Unmarshal(raw, &payload); err != nil {
			c.log.Warn("malformed event payload",
				logger.NewField("event", event),
				logger.NewField("error", err),
			)
			return
		}
		fn(payload.Message)
	})
}

func toDomainOrder(dto *orderDTO) entities.Order {
	status := entities.OrderStatusType(dto.Status)
	if status == "" {
		status = entities.OrderOffered
	}
	return entities.Order{
		ID:         dto.ID,
		Status:     status,
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
}
