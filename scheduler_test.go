package snapfloat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFrameClock_FiresInDeadlineOrder(t *testing.T) {
	c := NewFrameClock(epoch)
	var fired []string

	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "b") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "d") })

	next, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, epoch.Add(100*time.Millisecond), next)

	c.Advance(epoch.Add(300 * time.Millisecond))
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 1, c.Pending())

	c.Advance(epoch.Add(2 * time.Second))
	assert.Equal(t, []string{"a", "b", "c", "d"}, fired)
	assert.Equal(t, 0, c.Pending())

	_, ok = c.Next()
	assert.False(t, ok)
}

func TestFrameClock_Stop(t *testing.T) {
	c := NewFrameClock(epoch)
	fired := false

	tm := c.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	c.Advance(epoch.Add(time.Minute))
	assert.False(t, fired)

	tm = c.AfterFunc(time.Second, func() { fired = true })
	c.Advance(epoch.Add(2 * time.Minute))
	assert.True(t, fired)
	assert.False(t, tm.Stop(), "stopping a fired timer")
}

func TestFrameClock_CallbacksCanSchedule(t *testing.T) {
	c := NewFrameClock(epoch)
	var fired []int

	c.AfterFunc(time.Second, func() {
		fired = append(fired, 1)
		c.AfterFunc(0, func() { fired = append(fired, 2) })
		c.AfterFunc(time.Second, func() { fired = append(fired, 3) })
	})

	c.Advance(epoch.Add(time.Second))
	assert.Equal(t, []int{1, 2}, fired)
	assert.Equal(t, 1, c.Pending())

	c.Advance(epoch.Add(2 * time.Second))
	assert.Equal(t, []int{1, 2, 3}, fired)
}

func TestFrameClock_NeverMovesBackwards(t *testing.T) {
	c := NewFrameClock(epoch)
	c.Advance(epoch.Add(time.Second))
	c.Advance(epoch)
	assert.Equal(t, epoch.Add(time.Second), c.Now())

	fired := false
	c.AfterFunc(500*time.Millisecond, func() { fired = true })
	c.Advance(epoch.Add(1200 * time.Millisecond))
	assert.False(t, fired)
	c.Advance(epoch.Add(1500 * time.Millisecond))
	assert.True(t, fired)
}
