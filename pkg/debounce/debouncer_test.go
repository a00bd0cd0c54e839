package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"superviseme/pkg/debounce"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	// Arrange
	d := debounce.New(50 * time.Millisecond)
	var calls int32

	// Act: a burst of triggers within the quiet window
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&calls, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	// Assert: only the last one runs
	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_SeparateBurstsEachFire(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	var calls int32

	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)
	var calls int32

	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
