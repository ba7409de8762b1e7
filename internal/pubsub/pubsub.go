package pubsub

import (
	"context"
	"log/slog"
	goruntime "runtime"
	"sync"
	"time"
)

// DefaultKickTimeout is the time a subscriber may block a Publish call before it is dropped.
const DefaultKickTimeout = 20 * time.Second

type Publisher[E any] interface {
	Publish(evt E)
}

type Subscriber[E any] interface {
	Subscribe(ctx context.Context) Subscription[E]
}

type Subscription[E any] interface {
	ResultChan() <-chan E
	Stop()
}

// PubSub fans events out to all subscribers in publish order.
// Stop closes every subscription channel, which tells consumers that no further events follow.
type PubSub[E any] struct {
	KickTimeout   time.Duration
	mutex         sync.RWMutex
	subscriptions map[int64]*subscription[E]
	seq           int64
	stopped       bool
}

func New[E any]() *PubSub[E] {
	return &PubSub[E]{
		KickTimeout:   DefaultKickTimeout,
		subscriptions: map[int64]*subscription[E]{},
	}
}

func (p *PubSub[E]) Stop() {
	p.mutex.Lock()
	p.stopped = true
	subscriptions := make([]*subscription[E], 0, len(p.subscriptions))
	for _, s := range p.subscriptions {
		subscriptions = append(subscriptions, s)
	}
	p.mutex.Unlock()

	for _, s := range subscriptions {
		s.Stop()
	}
}

func (p *PubSub[E]) Subscribe(ctx context.Context) Subscription[E] {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.stopped {
		return noopSubscription[E]("noop-subscription")
	}

	p.seq++

	buf := make([]byte, 1024)
	i := goruntime.Stack(buf, false)
	ctx, cancel := context.WithCancel(ctx)
	s := &subscription[E]{
		id:     p.seq,
		cancel: cancel,
		pubsub: p,
		ch:     make(chan E, 10),
		stack:  string(buf[:i]),
	}
	p.subscriptions[s.id] = s

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return s
}

func (p *PubSub[E]) Publish(evt E) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if p.stopped {
		return
	}

	for _, s := range p.subscriptions {
		select {
		case s.ch <- evt:
		case <-time.After(p.KickTimeout):
			slog.Warn("kicking subscriber that did not accept the event in time", "timeout", p.KickTimeout, "subscriber", s.stack)
			go s.Stop()
		}
	}
}

type subscription[E any] struct {
	pubsub *PubSub[E]
	id     int64
	cancel context.CancelFunc
	ch     chan E
	stack  string
	closed bool
}

// Stop unsubscribes and closes the result channel.
// Events that were already buffered can still be received.
func (s *subscription[E]) Stop() {
	s.pubsub.mutex.Lock()
	if s.closed {
		s.pubsub.mutex.Unlock()
		return
	}
	s.closed = true
	delete(s.pubsub.subscriptions, s.id)
	s.pubsub.mutex.Unlock()

	close(s.ch)
	s.cancel()
}

func (s *subscription[E]) ResultChan() <-chan E {
	return s.ch
}

type noopSubscription[E any] string

func (noopSubscription[E]) Stop() {}

func (noopSubscription[E]) ResultChan() <-chan E {
	ch := make(chan E)
	close(ch)
	return ch
}
