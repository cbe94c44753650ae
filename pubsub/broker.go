package pubsub

import (
	"context"
	"sync"
)

// Broker fans values out to zero or more subscribers. It is safe for
// concurrent use. Publish never blocks: a subscriber that has not consumed
// its previous value has it replaced by the newest one (latest-only
// conflation), which bounds memory regardless of consumer speed.
type Broker[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	buf    int
}

// NewBroker constructs a Broker whose subscriber channels buffer at most buf
// undelivered values. A buf below one is treated as one.
func NewBroker[T any](buf int) *Broker[T] {
	if buf < 1 {
		buf = 1
	}
	return &Broker[T]{subs: make(map[uint64]chan T), buf: buf}
}

// Subscribe registers a new subscriber and returns its channel. Any seed
// values are delivered before the first published value. The subscription
// lasts until ctx ends, at which point the channel is closed and the
// subscriber is removed from the registry.
func (b *Broker[T]) Subscribe(ctx context.Context, seed ...T) <-chan T {
	b.mu.Lock()
	ch := make(chan T, b.buf)
	for _, v := range seed {
		b.deliverLocked(ch, v)
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.unsubscribe(id)
	}()

	return ch
}

// Publish delivers v to every active subscriber. Values are delivered to a
// given subscriber in publish order; conflation may drop superseded values
// but never reorders them.
func (b *Broker[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		b.deliverLocked(ch, v)
	}
}

// Len returns the number of active subscribers.
func (b *Broker[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broker[T]) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// deliverLocked performs a non-blocking send, evicting the oldest queued
// value when the channel is full. Only Publish and Subscribe send on
// subscriber channels, and both hold b.mu, so the drain-then-send pair
// cannot race with another producer.
func (b *Broker[T]) deliverLocked(ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
