package timer

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCountdownFires(t *testing.T) {
	var fired atomic.Int32
	c := New("simmer", 30*time.Millisecond, func(string) { fired.Add(1) },
		zap.NewNop(), WithTickInterval(10*time.Millisecond))

	c.Start()
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(1), fired.Load())
	assert.Equal(t, time.Duration(0), c.Remaining())
	assert.False(t, c.Running())
}

func TestCountdownPauseHoldsRemaining(t *testing.T) {
	c := New("rest", time.Second, nil, zap.NewNop(), WithTickInterval(10*time.Millisecond))

	c.Start()
	time.Sleep(35 * time.Millisecond)
	c.Pause()
	held := c.Remaining()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, held, c.Remaining())
	assert.True(t, c.Running())

	c.Resume()
	time.Sleep(35 * time.Millisecond)
	assert.Less(t, c.Remaining(), held)

	c.Stop()
}

func TestCountdownStopDoesNotFire(t *testing.T) {
	var fired atomic.Int32
	c := New("boil", 50*time.Millisecond, func(string) { fired.Add(1) },
		zap.NewNop(), WithTickInterval(10*time.Millisecond))

	c.Start()
	time.Sleep(15 * time.Millisecond)
	c.Stop()
	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, int32(0), fired.Load())
	assert.False(t, c.Running())
}

func TestCountdownStartTwiceIsNoOp(t *testing.T) {
	c := New("bake", time.Second, nil, zap.NewNop(), WithTickInterval(10*time.Millisecond))
	c.Start()
	c.Start()
	c.Stop()
	assert.False(t, c.Running())
}

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{5 * time.Second, "0:05"},
		{90 * time.Second, "1:30"},
		{10 * time.Minute, "10:00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatRemaining(tc.d))
	}
}
