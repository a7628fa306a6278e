package events

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, sub *Subscription[T]) T {
	t.Helper()
	select {
	case v, ok := <-sub.C():
		require.True(t, ok, "subscription channel closed unexpectedly")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	var zero T
	return zero
}

func assertNoValue[T any](t *testing.T, sub *Subscription[T]) {
	t.Helper()
	select {
	case v := <-sub.C():
		t.Fatalf("unexpected snapshot: %v", v)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestFeed_NewSubscriberReceivesLatest(t *testing.T) {
	feed := NewFeed[int]()
	feed.Publish(7)

	sub := feed.Subscribe()
	defer sub.Close()

	assert.Equal(t, 7, receive(t, sub))
}

func TestFeed_NoValueBeforeFirstPublish(t *testing.T) {
	feed := NewFeed[int]()
	sub := feed.Subscribe()
	defer sub.Close()

	assertNoValue(t, sub)
	_, ok := feed.Latest()
	assert.False(t, ok)
}

func TestFeed_MostRecentWins(t *testing.T) {
	feed := NewFeed[int]()
	sub := feed.Subscribe()
	defer sub.Close()

	feed.Publish(1)
	feed.Publish(2)
	feed.Publish(3)

	assert.Equal(t, 3, receive(t, sub))
	assertNoValue(t, sub)
}

func TestFeed_BroadcastsToAllSubscribers(t *testing.T) {
	feed := NewFeed[string]()
	a := feed.Subscribe()
	b := feed.Subscribe()
	defer a.Close()
	defer b.Close()

	feed.Publish("hello")

	assert.Equal(t, "hello", receive(t, a))
	assert.Equal(t, "hello", receive(t, b))
	assert.Equal(t, 2, feed.Subscribers())
}

func TestFeed_LifecycleHooks(t *testing.T) {
	var activations, idles atomic.Int32
	feed := NewFeed[int](
		OnActive(func() { activations.Add(1) }),
		OnIdle(func() { idles.Add(1) }),
	)

	assert.False(t, feed.Active())

	a := feed.Subscribe()
	b := feed.Subscribe()
	assert.True(t, feed.Active())
	assert.Equal(t, int32(1), activations.Load(), "second subscriber must share the active upstream")

	a.Close()
	assert.Equal(t, int32(0), idles.Load())
	b.Close()
	assert.Equal(t, int32(1), idles.Load())
	assert.False(t, feed.Active())

	c := feed.Subscribe()
	defer c.Close()
	assert.Equal(t, int32(2), activations.Load())
}

func TestFeed_ActiveHookMayPublish(t *testing.T) {
	var feed *Feed[int]
	feed = NewFeed[int](OnActive(func() { feed.Publish(42) }))

	sub := feed.Subscribe()
	defer sub.Close()

	assert.Equal(t, 42, receive(t, sub))
}

func TestFeed_LingerDelaysIdle(t *testing.T) {
	idled := make(chan struct{}, 1)
	feed := NewFeed[int](
		WithLinger(30*time.Millisecond),
		OnIdle(func() { idled <- struct{}{} }),
	)

	sub := feed.Subscribe()
	sub.Close()
	assert.True(t, feed.Active(), "feed should linger after last unsubscribe")

	select {
	case <-idled:
	case <-time.After(2 * time.Second):
		t.Fatal("feed never went idle")
	}
	assert.False(t, feed.Active())
}

func TestFeed_ResubscribeWithinLingerCancelsIdle(t *testing.T) {
	var activations, idles atomic.Int32
	feed := NewFeed[int](
		WithLinger(50*time.Millisecond),
		OnActive(func() { activations.Add(1) }),
		OnIdle(func() { idles.Add(1) }),
	)

	first := feed.Subscribe()
	first.Close()
	second := feed.Subscribe()
	defer second.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), idles.Load())
	assert.Equal(t, int32(1), activations.Load())
}

func TestSubscription_CloseIsIdempotent(t *testing.T) {
	feed := NewFeed[int]()
	sub := feed.Subscribe()

	sub.Close()
	sub.Close()

	_, ok := <-sub.C()
	assert.False(t, ok, "channel should be closed")
	assert.Equal(t, 0, feed.Subscribers())

	// publishing after close must not panic
	feed.Publish(1)
}

func TestRelay_SharesOneUpstream(t *testing.T) {
	var upstreamActivations atomic.Int32
	upstream := NewFeed[int](OnActive(func() { upstreamActivations.Add(1) }))

	doubled := Relay[int, int](upstream, func(v int) int { return v * 2 })

	a := doubled.Subscribe()
	b := doubled.Subscribe()

	upstream.Publish(5)
	assert.Equal(t, 10, receive(t, a))
	assert.Equal(t, 10, receive(t, b))
	assert.Equal(t, int32(1), upstreamActivations.Load())
	assert.Equal(t, 1, upstream.Subscribers())

	a.Close()
	b.Close()
	assert.Equal(t, 0, upstream.Subscribers(), "idle relay must release its upstream")
}

func TestRelay_IdleDropsInFlightValue(t *testing.T) {
	upstream := NewFeed[int]()
	entered := make(chan struct{})
	release := make(chan struct{})
	relay := Relay[int, int](upstream, func(v int) int {
		close(entered)
		<-release
		return v
	})

	sub := relay.Subscribe()
	upstream.Publish(7)
	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("transform never ran")
	}

	sub.Close()
	close(release)

	assert.Never(t, func() bool {
		_, ok := relay.Latest()
		return ok
	}, 100*time.Millisecond, 5*time.Millisecond, "value from a released upstream must not be kept")
}

func TestFeed_ResetDropsLatest(t *testing.T) {
	feed := NewFeed[string]()
	feed.Publish("stale")
	feed.Reset()

	_, ok := feed.Latest()
	assert.False(t, ok)

	sub := feed.Subscribe()
	defer sub.Close()
	select {
	case v := <-sub.C():
		t.Fatalf("unexpected replay %q", v)
	default:
	}
}
