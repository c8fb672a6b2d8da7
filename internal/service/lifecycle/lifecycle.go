package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"simulator/internal/entities"
	"simulator/pkg/logger"
)

const (
	cancelReasonShiftEnd    = "shift_end"
	cancelReasonStaleAccept = "stale_accept"
)

type Config struct {
	// SearchRadiusKm -- радиус поиска заказов.
	SearchRadiusKm float64

	// SearchStartDelay -- пауза между регистрацией на канале и первым
	// запросом поиска. Серверная регистрация должна успеть завершиться
	// до того, как уйдет start_order_search.
	SearchStartDelay time.Duration
}

// Controller -- конечный автомат смены курьера. Единственная точка
// мутации сессии: хранилище, канал и трекинг позиции дергаются только
// отсюда.
type Controller struct {
	gateway   GameGateway
	channel   RealtimeChannel
	positions PositionSource
	store     SessionStore
	poller    ZonePoller
	confirmer Confirmer
	log       handlerLogger
	cfg       Config

	mu          sync.Mutex
	runCtx      context.Context
	state       entities.LifecycleState
	zones       entities.ZoneStatus
	orderEpoch  uint64
	searchTimer *time.Timer

	// offerMu сериализует обработку входящих предложений заказа,
	// чтобы проверка "заказ уже на руках" и принятие были атомарны.
	offerMu sync.Mutex

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]func(state entities.LifecycleState)
}

func New(
	gateway GameGateway,
	channel RealtimeChannel,
	positions PositionSource,
	store SessionStore,
	poller ZonePoller,
	confirmer Confirmer,
	log handlerLogger,
	cfg Config,
) *Controller {
	return &Controller{
		gateway:     gateway,
		channel:     channel,
		positions:   positions,
		store:       store,
		poller:      poller,
		confirmer:   confirmer,
		log:         log,
		cfg:         cfg,
		state:       entities.StateRequestingGPS,
		subscribers: make(map[int]func(state entities.LifecycleState)),
	}
}

// Start подписывает контроллер на события канала и позиции и
// восстанавливает сессию. Повторный Start ничего не делает.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.runCtx != nil {
		c.mu.Unlock()
		return nil
	}
	c.runCtx = ctx
	c.mu.Unlock()

	c.channel.OnOrderFound(c.handleOrderFound)
	c.channel.OnNoOrdersFound(c.handleNoOrdersFound)
	c.channel.OnSearchError(c.handleSearchError)

	// каждый фикс позиции уходит на сервер, троттлинг внутри канала
	c.positions.Subscribe(func(pos entities.Position) {
		c.channel.SendPosition(pos)
	})

	c.restore(ctx)
	return nil
}

// Stop останавливает фоновую активность. Сессия остается на диске.
func (c *Controller) Stop() {
	c.cancelSearchTimer()
	c.poller.Stop()
	c.positions.StopTracking()
}

func (c *Controller) State() entities.LifecycleState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Zones() entities.ZoneStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zones
}

// Subscribe регистрирует наблюдателя смены состояний. Возвращает функцию
// отписки. Наблюдателей может быть несколько, новый не затирает прежних.
func (c *Controller) Subscribe(fn func(state entities.LifecycleState)) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subscribers, id)
	}
}

// PrimaryAction выполняет контекстное действие текущего состояния.
// Ошибка не меняет состояние: действие остается доступным для повтора.
func (c *Controller) PrimaryAction(ctx context.Context) error {
	switch state := c.State(); state {
	case entities.StateUnsupported:
		return ErrUnsupported
	case entities.StateRequestingGPS:
		return c.requestGPS(ctx)
	case entities.StateStartShift:
		return c.startShift(ctx)
	case entities.StateSearching:
		return c.stopSearching()
	case entities.StateToPickup, entities.StateToDropoff:
		return ErrNotInZone
	case entities.StateAtPickup:
		return c.pickup(ctx)
	case entities.StateAtDropoff:
		return c.deliver(ctx)
	case entities.StateEndShift:
		return c.endShift(ctx)
	default:
		return fmt.Errorf("no action for state %s", state)
	}
}

// RequestEndShift завершает смену из любого состояния после ее начала.
// Если заказ на руках, требует подтверждения: завершение его отменит.
func (c *Controller) RequestEndShift(ctx context.Context) error {
	if !c.State().PostShift() {
		return nil
	}
	return c.endShift(ctx)
}

func (c *Controller) requestGPS(ctx context.Context) error {
	if !c.positions.Supported() {
		c.setState(entities.StateUnsupported)
		return ErrUnsupported
	}
	if _, err := c.positions.RequestPermission(ctx); err != nil {
		// остаемся в RequestingGPS, кнопка доступна для повтора
		return fmt.Errorf("request position permission: %w", err)
	}
	c.setState(entities.StateStartShift)
	return nil
}

func (c *Controller) startShift(ctx context.Context) error {
	userID := c.store.UserID()
	if err := c.gateway.StartShift(ctx, userID); err != nil {
		return fmt.Errorf("start shift: %w", err)
	}

	if err := c.store.SetOnShift(true); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if err := c.positions.StartTracking(c.runContext()); err != nil {
		c.log.Warn("Position tracking unavailable", logger.NewField("error", err))
	}

	c.channel.Login(userID)
	c.setState(entities.StateSearching)
	c.scheduleSearch()
	return nil
}

func (c *Controller) stopSearching() error {
	c.cancelSearchTimer()
	c.channel.StopSearch()
	if err := c.store.SetSearching(false); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	c.setState(entities.StateEndShift)
	return nil
}

func (c *Controller) pickup(ctx context.Context) error {
	if c.store.CurrentOrder() == nil {
		return ErrNoOrder
	}
	startEpoch := c.epoch()

	order, err := c.gateway.PickupOrder(ctx, c.store.UserID())
	if err != nil {
		return fmt.Errorf("pickup order: %w", err)
	}

	c.mu.Lock()
	// параллельное завершение смены могло отменить заказ, пока ответ шел
	if c.orderEpoch != startEpoch {
		c.mu.Unlock()
		c.log.Warn("Pickup response discarded: order changed mid-flight",
			logger.NewField("order_id", order.ID),
		)
		return ErrNoOrder
	}
	if err := c.store.SetCurrentOrder(order); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	zones := c.zones
	c.mu.Unlock()

	c.log.Info("Order picked up",
		logger.NewField("order_id", order.ID),
	)
	c.setState(phaseState(order, zones))
	return nil
}

func (c *Controller) deliver(ctx context.Context) error {
	if c.store.CurrentOrder() == nil {
		return ErrNoOrder
	}

	result, err := c.gateway.DeliverOrder(ctx, c.store.UserID())
	if err != nil {
		// заказ остается на руках, действие доступно для повтора
		return fmt.Errorf("deliver order: %w", err)
	}

	c.mu.Lock()
	c.orderEpoch++
	if err := c.store.SetBalance(result.NewBalance); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if err := c.store.SetCurrentOrder(nil); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	c.zones = entities.ZoneStatus{}
	c.mu.Unlock()

	c.poller.Stop()

	c.log.Info("Order delivered",
		logger.NewField("payout", result.Payout.Total),
		logger.NewField("bonus", result.Payout.Bonus),
		logger.NewField("balance", result.NewBalance),
	)

	// возвращаемся к поиску; повторный login не нужен, канал уже знает нас
	c.setState(entities.StateSearching)
	c.scheduleSearch()
	return nil
}

func (c *Controller) endShift(ctx context.Context) error {
	userID := c.store.UserID()

	if order := c.store.CurrentOrder(); order != nil {
		if !c.confirmer.Confirm(ctx, "Завершение смены отменит текущий заказ. Продолжить?") {
			// отказ пользователя: ни одного вызова на сервер не ушло
			return ErrDeclined
		}
		if err := c.gateway.CancelOrder(ctx, userID, cancelReasonShiftEnd); err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		c.mu.Lock()
		c.orderEpoch++
		c.zones = entities.ZoneStatus{}
		if err := c.store.SetCurrentOrder(nil); err != nil {
			c.log.Warn("Session persist failed", logger.NewField("error", err))
		}
		c.mu.Unlock()

		c.poller.Stop()
		c.setState(entities.StateEndShift)
	}

	if c.store.Searching() {
		c.channel.StopSearch()
	}
	c.cancelSearchTimer()

	if err := c.gateway.StopShift(ctx, userID); err != nil {
		return fmt.Errorf("stop shift: %w", err)
	}

	c.poller.Stop()
	c.positions.StopTracking()
	if err := c.store.ClearShift(); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}

	c.mu.Lock()
	// граница смены обесценивает любые ответы, ушедшие в сеть до нее
	c.orderEpoch++
	c.zones = entities.ZoneStatus{}
	c.mu.Unlock()

	c.log.Info("Shift ended", logger.NewField("user_id", userID))
	c.setState(entities.StateStartShift)
	return nil
}

// restore поднимает сессию после рестарта. Сервер авторитетен: его
// статус важнее локального снимка.
func (c *Controller) restore(ctx context.Context) {
	if !c.positions.Supported() {
		c.setState(entities.StateUnsupported)
		return
	}
	if !c.store.GPSGranted() {
		c.setState(entities.StateRequestingGPS)
		return
	}
	if _, err := c.positions.RequestPermission(ctx); err != nil {
		c.log.Warn("Silent position fetch failed", logger.NewField("error", err))
		c.setState(entities.StateRequestingGPS)
		return
	}
	if !c.store.OnShift() {
		c.setState(entities.StateStartShift)
		return
	}

	userID := c.store.UserID()
	status, err := c.gateway.Status(ctx, userID)
	if err != nil {
		c.log.Warn("Session restore failed, starting fresh",
			logger.NewField("error", err),
		)
		if err := c.store.ClearShift(); err != nil {
			c.log.Warn("Session persist failed", logger.NewField("error", err))
		}
		c.setState(entities.StateStartShift)
		return
	}

	if err := c.store.SetBalance(status.Balance); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if err := c.positions.StartTracking(c.runContext()); err != nil {
		c.log.Warn("Position tracking unavailable", logger.NewField("error", err))
	}
	c.channel.Login(userID)

	if status.ActiveOrder != nil {
		c.mu.Lock()
		c.orderEpoch++
		c.mu.Unlock()
		if err := c.store.SetSearching(false); err != nil {
			c.log.Warn("Session persist failed", logger.NewField("error", err))
		}
		if err := c.store.SetCurrentOrder(status.ActiveOrder); err != nil {
			c.log.Warn("Session persist failed", logger.NewField("error", err))
		}

		c.log.Info("Active order restored",
			logger.NewField("order_id", status.ActiveOrder.ID),
		)
		c.setState(phaseState(status.ActiveOrder, entities.ZoneStatus{}))
		c.poller.Start(c.runContext(), c.pollZones)
		return
	}

	// локальный снимок мог держать заказ, которого на сервере уже нет
	if err := c.store.SetCurrentOrder(nil); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if err := c.store.SetSearching(false); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	c.setState(entities.StateSearching)
	c.scheduleSearch()
}

func (c *Controller) handleOrderFound(offer entities.Order) {
	// принятие заказа ходит по сети, снимаем его с горутины чтения сокета
	go c.acceptOffer(c.runContext(), offer)
}

func (c *Controller) acceptOffer(ctx context.Context, offer entities.Order) {
	c.offerMu.Lock()
	defer c.offerMu.Unlock()

	// ровно один активный заказ на сессию: лишние предложения игнорируем
	if c.store.CurrentOrder() != nil {
		c.log.Info("Order offer ignored: already holding an order",
			logger.NewField("order_id", offer.ID),
		)
		return
	}
	if !c.store.OnShift() {
		c.log.Info("Order offer ignored: not on shift",
			logger.NewField("order_id", offer.ID),
		)
		return
	}

	userID := c.store.UserID()
	startEpoch := c.epoch()

	order, err := c.gateway.AcceptOrder(ctx, userID, offer.ID)
	if err != nil {
		c.log.Warn("Order accept failed, search continues",
			logger.NewField("order_id", offer.ID),
			logger.NewField("error", err),
		)
		return
	}

	c.mu.Lock()
	// пока принятие ходило по сети, смена могла завершиться или заказ
	// смениться: запоздавший ответ не фиксируем, заказ возвращаем серверу
	if c.orderEpoch != startEpoch || !c.store.OnShift() {
		c.mu.Unlock()
		c.log.Warn("Order accept landed after state changed, cancelling",
			logger.NewField("order_id", order.ID),
		)
		if err := c.gateway.CancelOrder(ctx, userID, cancelReasonStaleAccept); err != nil {
			c.log.Warn("Stale order cancel failed",
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			)
		}
		return
	}
	c.orderEpoch++
	if err := c.store.SetSearching(false); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if err := c.store.SetCurrentOrder(order); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	c.mu.Unlock()

	c.log.Info("Order accepted",
		logger.NewField("order_id", order.ID),
		logger.NewField("pickup", order.Pickup.Name),
		logger.NewField("amount", order.Amount),
	)
	c.setState(entities.StateToPickup)
	c.poller.Start(c.runContext(), c.pollZones)
}

func (c *Controller) handleNoOrdersFound(message string) {
	c.log.Info("No orders found", logger.NewField("message", message))
	if err := c.store.SetSearching(false); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	// сервер закончил поиск впустую, пробуем еще раз через паузу
	if c.State() == entities.StateSearching {
		c.scheduleSearch()
	}
}

func (c *Controller) handleSearchError(message string) {
	c.log.Warn("Order search failed", logger.NewField("message", message))
	if err := c.store.SetSearching(false); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	if c.State() == entities.StateSearching {
		c.scheduleSearch()
	}
}

// pollZones -- одна итерация геозонного опроса.
func (c *Controller) pollZones(ctx context.Context) {
	// тик мог прийти уже после очистки заказа
	if c.store.CurrentOrder() == nil {
		return
	}

	epoch := c.epoch()
	pos, ok := c.positions.Current()
	if !ok {
		return
	}

	zones, err := c.gateway.ReportPosition(ctx, c.store.UserID(), pos)
	if err != nil {
		c.log.Warn("Zone check failed", logger.NewField("error", err))
		return
	}

	c.mu.Lock()
	// запоздавший ответ от уже сменившегося заказа не двигает автомат
	if c.orderEpoch != epoch {
		c.mu.Unlock()
		return
	}
	order := c.store.CurrentOrder()
	if order == nil {
		c.mu.Unlock()
		return
	}
	c.zones = zones
	c.mu.Unlock()

	c.setState(phaseState(order, zones))
}

func (c *Controller) scheduleSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	c.searchTimer = time.AfterFunc(c.cfg.SearchStartDelay, c.beginSearch)
}

func (c *Controller) beginSearch() {
	// к моменту срабатывания таймера смена могла закончиться
	// или заказ найтись
	if !c.store.OnShift() || c.store.CurrentOrder() != nil {
		return
	}
	if c.State() != entities.StateSearching {
		return
	}

	if err := c.store.SetSearching(true); err != nil {
		c.log.Warn("Session persist failed", logger.NewField("error", err))
	}
	c.channel.StartSearch(c.cfg.SearchRadiusKm)
	c.log.Info("Order search started",
		logger.NewField("radius_km", c.cfg.SearchRadiusKm),
	)
}

func (c *Controller) cancelSearchTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.searchTimer != nil {
		c.searchTimer.Stop()
		c.searchTimer = nil
	}
}

func (c *Controller) setState(to entities.LifecycleState) {
	c.mu.Lock()
	if c.state == to {
		c.mu.Unlock()
		return
	}
	from := c.state
	c.state = to
	c.mu.Unlock()

	c.log.Info("State transition",
		logger.NewField("from", from),
		logger.NewField("to", to),
	)

	c.subMu.Lock()
	handlers := make([]func(entities.LifecycleState), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		handlers = append(handlers, fn)
	}
	c.subMu.Unlock()

	for _, fn := range handlers {
		fn(to)
	}
}

func (c *Controller) epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orderEpoch
}

func (c *Controller) runContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runCtx == nil {
		return context.Background()
	}
	return c.runCtx
}

// phaseState выводит состояние автомата из фазы заказа и серверного
// решения по зонам. pickupTime -- единственный признак фазы доставки.
func phaseState(order *entities.Order, zones entities.ZoneStatus) entities.LifecycleState {
	if order.PickedUp() {
		if zones.InDropoffZone && zones.CanDeliver {
			return entities.StateAtDropoff
		}
		return entities.StateToDropoff
	}
	if zones.InPickupZone && zones.CanPickup {
		return entities.StateAtPickup
	}
	return entities.StateToPickup
}
