package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitDeliversInRegistrationOrder(t *testing.T) {
	e := NewEmitter[int]()

	var order []string
	e.Subscribe(func(int) { order = append(order, "first") })
	e.Subscribe(func(int) { order = append(order, "second") })
	e.Subscribe(func(int) { order = append(order, "third") })

	e.Emit(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEmitPassesValue(t *testing.T) {
	e := NewEmitter[string]()

	var got string
	e.Subscribe(func(v string) { got = v })

	e.Emit("hello")
	assert.Equal(t, "hello", got)
}

func TestCancelStopsDelivery(t *testing.T) {
	e := NewEmitter[int]()

	calls := 0
	sub := e.Subscribe(func(int) { calls++ })

	e.Emit(1)
	sub.Cancel()
	e.Emit(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.Len())
}

func TestCancelIsIdempotent(t *testing.T) {
	e := NewEmitter[int]()

	sub := e.Subscribe(func(int) {})
	e.Subscribe(func(int) {})

	sub.Cancel()
	sub.Cancel()
	assert.Equal(t, 1, e.Len())
}

func TestSubscribeDuringEmit(t *testing.T) {
	e := NewEmitter[int]()

	lateCalls := 0
	e.Subscribe(func(int) {
		e.Subscribe(func(int) { lateCalls++ })
	})

	e.Emit(1)
	assert.Equal(t, 0, lateCalls, "handler registered mid-delivery must not receive the current value")

	e.Emit(2)
	assert.Equal(t, 1, lateCalls)
}

func TestCancelDuringEmit(t *testing.T) {
	e := NewEmitter[int]()

	var secondCalls int
	var second Subscription
	e.Subscribe(func(int) { second.Cancel() })
	second = e.Subscribe(func(int) { secondCalls++ })

	e.Emit(1)
	assert.Equal(t, 0, secondCalls, "handler cancelled mid-delivery before its turn must be skipped")
}

func TestEmitWithNoSubscribers(t *testing.T) {
	e := NewEmitter[int]()
	e.Emit(1) // must not panic
	assert.Equal(t, 0, e.Len())
}
