package background

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"simulator/pkg/logger"
)

// Poller периодически выполняет функцию, пока его не остановят.
//
// В отличие от Worker, который живет весь срок работы приложения,
// Poller запускается и останавливается многократно. Start и Stop
// идемпотентны и безопасны для конкурентного вызова.
type Poller struct {
	log      handlerLogger
	interval time.Duration
	name     string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller создает остановленный Poller с заданным интервалом.
func NewPoller(log handlerLogger, name string, interval time.Duration) *Poller {
	return &Poller{
		log:      log,
		interval: interval,
		name:     name,
	}
}

// Start запускает периодическое выполнение fn. Повторный Start
// на работающем Poller ничего не делает.
func (p *Poller) Start(ctx context.Context, fn func(context.Context)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	p.log.Info("Starting poller",
		logger.NewField("poller", p.name),
		logger.NewField("interval", p.interval),
	)

	go p.loop(runCtx, fn, p.done)
}

// Stop останавливает выполнение и дожидается завершения текущей итерации.
// Stop на остановленном Poller ничего не делает.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done

	p.log.Info("Poller stopped",
		logger.NewField("poller", p.name),
	)
}

// Running сообщает, запущен ли Poller.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) loop(ctx context.Context, fn func(context.Context), done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.executeSafely(ctx, fn)
		}
	}
}

func (p *Poller) executeSafely(ctx context.Context, fn func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			p.log.Error("Poller iteration panic",
				logger.NewField("poller", p.name),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	fn(ctx)
}
