// Package events provides live snapshot feeds used to push data changes to
// every screen that is currently observing them.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Feed broadcasts full snapshots of type T to its subscribers.
//
// Each subscriber channel buffers at most one value: when a newer snapshot is
// published before the previous one was received, the stale one is dropped.
// A new subscriber immediately receives the latest snapshot, if any.
//
// The feed is active while it has at least one subscriber. The OnActive hook
// runs when the first subscriber arrives and OnIdle runs after the last one
// leaves (delayed by the linger duration, if set). Hooks run outside the
// feed's lock, so they may publish to the feed.
type Feed[T any] struct {
	// lifecycle serializes activation and idling so hooks never interleave
	lifecycle sync.Mutex

	mu        sync.Mutex
	subs      map[uuid.UUID]chan T
	latest    T
	hasLatest bool
	active    bool

	linger    time.Duration
	idleTimer *time.Timer

	onActive func()
	onIdle   func()
}

// FeedOption configures a Feed
type FeedOption func(*feedConfig)

type feedConfig struct {
	linger   time.Duration
	onActive func()
	onIdle   func()
}

// WithLinger keeps the feed active for d after the last subscriber leaves
func WithLinger(d time.Duration) FeedOption {
	return func(c *feedConfig) {
		c.linger = d
	}
}

// OnActive registers the hook run when the feed gains its first subscriber
func OnActive(fn func()) FeedOption {
	return func(c *feedConfig) {
		c.onActive = fn
	}
}

// OnIdle registers the hook run when the feed loses its last subscriber
func OnIdle(fn func()) FeedOption {
	return func(c *feedConfig) {
		c.onIdle = fn
	}
}

// NewFeed creates an inactive feed with no value
func NewFeed[T any](opts ...FeedOption) *Feed[T] {
	cfg := &feedConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Feed[T]{
		subs:     make(map[uuid.UUID]chan T),
		linger:   cfg.linger,
		onActive: cfg.onActive,
		onIdle:   cfg.onIdle,
	}
}

// Subscribe registers a new observer
func (f *Feed[T]) Subscribe() *Subscription[T] {
	f.lifecycle.Lock()
	defer f.lifecycle.Unlock()

	f.mu.Lock()

	id := uuid.New()
	ch := make(chan T, 1)
	if f.hasLatest {
		ch <- f.latest
	}
	f.subs[id] = ch

	if f.idleTimer != nil {
		f.idleTimer.Stop()
		f.idleTimer = nil
	}

	var hook func()
	if !f.active {
		f.active = true
		hook = f.onActive
	}
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	return &Subscription[T]{id: id, ch: ch, feed: f}
}

// Publish stores v as the latest snapshot and delivers it to every subscriber
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.latest = v
	f.hasLatest = true

	for _, ch := range f.subs {
		select {
		case ch <- v:
		default:
			// replace the undelivered snapshot
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Latest returns the most recently published snapshot
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.hasLatest
}

// Reset forgets the latest snapshot so later subscribers wait for a fresh one
func (f *Feed[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.latest = zero
	f.hasLatest = false
}

// Active reports whether the feed currently has (or is lingering for) subscribers
func (f *Feed[T]) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Subscribers returns the number of open subscriptions
func (f *Feed[T]) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *Feed[T]) unsubscribe(id uuid.UUID) {
	f.lifecycle.Lock()
	defer f.lifecycle.Unlock()

	f.mu.Lock()

	ch, ok := f.subs[id]
	if !ok {
		f.mu.Unlock()
		return
	}
	delete(f.subs, id)
	close(ch)

	if len(f.subs) > 0 || !f.active {
		f.mu.Unlock()
		return
	}

	if f.linger > 0 {
		f.idleTimer = time.AfterFunc(f.linger, f.expire)
		f.mu.Unlock()
		return
	}

	f.active = false
	hook := f.onIdle
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// expire idles the feed once the linger window passes without a new subscriber
func (f *Feed[T]) expire() {
	f.lifecycle.Lock()
	defer f.lifecycle.Unlock()

	f.mu.Lock()
	if len(f.subs) > 0 || !f.active {
		f.mu.Unlock()
		return
	}
	f.active = false
	f.idleTimer = nil
	hook := f.onIdle
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Subscription is one observer's view of a Feed
type Subscription[T any] struct {
	id   uuid.UUID
	ch   chan T
	feed *Feed[T]
	once sync.Once
}

// C returns the channel on which snapshots arrive. It is closed by Close.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close unsubscribes. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.once.Do(func() {
		s.feed.unsubscribe(s.id)
	})
}
