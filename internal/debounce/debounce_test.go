package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	d := New(30 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	assert.EqualValues(t, 0, calls.Load())

	time.Sleep(60 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
}

func TestDebouncerLatestWins(t *testing.T) {
	d := New(20 * time.Millisecond)
	var got atomic.Int32

	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })

	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 2, got.Load())
}

func TestFlushRunsImmediately(t *testing.T) {
	d := New(time.Hour)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Flush()
	assert.EqualValues(t, 1, calls.Load())

	// Nothing pending: Flush is a no-op.
	d.Flush()
	assert.EqualValues(t, 1, calls.Load())
}

func TestStopCancels(t *testing.T) {
	d := New(10 * time.Millisecond)
	var calls atomic.Int32

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.EqualValues(t, 0, calls.Load())
}
