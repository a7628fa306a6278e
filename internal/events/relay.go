package events

import "sync"

// Source is anything that hands out subscriptions to a snapshot stream
type Source[T any] interface {
	Subscribe() *Subscription[T]
}

// Relay returns a feed that mirrors upstream through transform while it is observed.
//
// A single upstream subscription is opened when the relay gains its first
// subscriber and closed when it goes idle, so any number of observers share
// one upstream. An idle relay forgets its last value and drops anything its
// old upstream still delivers. opts may set the linger duration; the
// lifecycle hooks are owned by the relay.
func Relay[S, T any](upstream Source[S], transform func(S) T, opts ...FeedOption) *Feed[T] {
	var (
		mu  sync.Mutex
		sub *Subscription[S]
		out *Feed[T]
	)

	start := func() {
		s := upstream.Subscribe()
		mu.Lock()
		sub = s
		mu.Unlock()

		go func() {
			for v := range s.C() {
				next := transform(v)
				mu.Lock()
				// a stopped or restarted relay no longer belongs to s
				if sub == s {
					out.Publish(next)
				}
				mu.Unlock()
			}
		}()
	}

	stop := func() {
		mu.Lock()
		s := sub
		sub = nil
		mu.Unlock()
		if s != nil {
			s.Close()
		}
		out.Reset()
	}

	out = NewFeed[T](append(opts, OnActive(start), OnIdle(stop))...)
	return out
}
