package practice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession() (*Session, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	s := NewSession()
	s.now = clock.Now
	return s, clock
}

func TestTapAutoStartsFromIdle(t *testing.T) {
	s, _ := newTestSession()

	require.Equal(t, Idle, s.State())
	count := s.Tap()

	assert.Equal(t, 1, count)
	assert.Equal(t, Running, s.State())
	assert.Equal(t, 1, s.Count())
}

func TestElapsedOnlyAdvancesWhileRunning(t *testing.T) {
	s, clock := newTestSession()

	// Idle time does not count.
	clock.Advance(10 * time.Second)
	assert.Equal(t, time.Duration(0), s.Elapsed())

	s.Tap()
	clock.Advance(30 * time.Second)
	assert.Equal(t, 30*time.Second, s.Elapsed())

	s.Pause()
	clock.Advance(2 * time.Minute)
	assert.Equal(t, 30*time.Second, s.Elapsed(), "paused time should not accumulate")

	s.Resume()
	clock.Advance(15 * time.Second)
	assert.Equal(t, 45*time.Second, s.Elapsed())
}

func TestTapWhilePausedResumes(t *testing.T) {
	s, clock := newTestSession()

	s.Tap()
	clock.Advance(5 * time.Second)
	s.Pause()

	s.Tap()
	assert.Equal(t, Running, s.State())
	assert.Equal(t, 2, s.Count())
}

func TestFinishReportsAndResets(t *testing.T) {
	s, clock := newTestSession()

	for i := 0; i < 10; i++ {
		s.Tap()
	}
	clock.Advance(65 * time.Second)

	duration, count := s.Finish()
	assert.Equal(t, 65, duration)
	assert.Equal(t, 10, count)

	// Everything is back to zero for the next session.
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, time.Duration(0), s.Elapsed())

	duration, count = s.Finish()
	assert.Equal(t, 0, duration)
	assert.Equal(t, 0, count)
}

func TestFinishTruncatesToWholeSeconds(t *testing.T) {
	s, clock := newTestSession()

	s.Tap()
	clock.Advance(12*time.Second + 900*time.Millisecond)

	duration, _ := s.Finish()
	assert.Equal(t, 12, duration)
}

func TestRate(t *testing.T) {
	s, clock := newTestSession()

	assert.Equal(t, 0.0, s.Rate())

	for i := 0; i < 6; i++ {
		s.Tap()
	}
	clock.Advance(2 * time.Minute)
	assert.InDelta(t, 3.0, s.Rate(), 0.01)
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "01:05", FormatElapsed(65))
	assert.Equal(t, "12:07", FormatElapsed(727))
}
