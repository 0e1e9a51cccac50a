package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2020, time.July, 12, 10, 51, 36, 0, time.UTC)

func TestFake_AdvanceFiresInDeadlineOrder(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	var fired []string
	c.AfterFunc(3*time.Second, func() { fired = append(fired, "three") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "one") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "one-again") })
	c.AfterFunc(10*time.Second, func() { fired = append(fired, "ten") })

	c.Advance(5 * time.Second)

	require.Equal(t, []string{"one", "one-again", "three"}, fired)
	require.Equal(t, epoch.Add(5*time.Second), c.Now())
	require.Equal(t, 1, c.Pending())
}

func TestFake_CallbackSeesItsDeadline(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	var seen time.Time
	c.AfterFunc(2*time.Second, func() { seen = c.Now() })
	c.Advance(time.Minute)

	require.Equal(t, epoch.Add(2*time.Second), seen)
}

func TestFake_RescheduleFromCallback(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		c.AfterFunc(time.Second, tick)
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(5 * time.Second)
	require.Equal(t, 5, ticks)
}

func TestFake_Stop(t *testing.T) {
	t.Parallel()

	c := NewFake(epoch)

	called := false
	timer := c.AfterFunc(time.Second, func() { called = true })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop(), "second stop has nothing to prevent")

	c.Advance(time.Hour)
	require.False(t, called)
}

func TestReal_AfterFunc(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	Real().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real timer did not fire")
	}
}
