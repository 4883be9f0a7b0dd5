package activity

import (
	"context"
	"sync"

	"github.com/matheus3301/gamechat/internal/bus"
	"github.com/matheus3301/gamechat/internal/state"
	"go.uber.org/zap"
)

// Recorder logs every UI state change published on the bus.
type Recorder struct {
	bus    *bus.Bus
	logger *zap.Logger
	cancel context.CancelFunc
	done   chan struct{}
	mu     sync.Mutex
	counts map[string]int
}

// NewRecorder creates a recorder. Call Start to begin consuming events.
func NewRecorder(b *bus.Bus, logger *zap.Logger) *Recorder {
	return &Recorder{
		bus:    b,
		logger: logger,
		counts: make(map[string]int),
	}
}

// Start subscribes to state events.
func (r *Recorder) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	ch, unsub := r.bus.Subscribe(bus.NamespaceState, 64)

	go func() {
		defer close(r.done)
		defer unsub()
		for {
			select {
			case evt, ok := <-ch:
				if !ok {
					return
				}
				r.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops consuming events, waits for the consumer to exit and logs
// how many events of each kind were seen during the session.
func (r *Recorder) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil

	r.logger.Info("activity summary",
		zap.Int("tab_changes", r.Count(bus.TabChanged)),
		zap.Int("chat_selections", r.Count(bus.ChatSelected)),
		zap.Int("searches", r.Count(bus.SearchChanged)),
		zap.Int("plan_changes", r.Count(bus.PremiumChanged)),
	)
}

// Count returns how many events of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[kind]
}

func (r *Recorder) handleEvent(evt bus.Event) {
	r.mu.Lock()
	r.counts[evt.Kind]++
	r.mu.Unlock()

	switch evt.Kind {
	case bus.TabChanged:
		tab, _ := evt.Payload.(state.Tab)
		r.logger.Info("tab changed", zap.String("tab", string(tab)))
	case bus.SearchChanged:
		q, _ := evt.Payload.(string)
		r.logger.Debug("search changed", zap.Int("length", len([]rune(q))))
	case bus.ChatSelected:
		id, _ := evt.Payload.(int)
		r.logger.Info("chat selected", zap.Int("chat_id", id))
	case bus.PremiumChanged:
		change, ok := evt.Payload.(state.PlanChange)
		if !ok {
			r.logger.Warn("unexpected premium payload", zap.Any("payload", evt.Payload))
			return
		}
		r.logger.Info("plan changed",
			zap.String("from", string(change.From)),
			zap.String("to", string(change.To)),
		)
	default:
		r.logger.Debug("unhandled event", zap.String("kind", evt.Kind))
	}
}
