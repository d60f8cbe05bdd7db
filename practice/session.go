// practice/session.go - Practice stopwatch and song counter
//
// State machine behind the practice capture screen: a tap counter with an
// elapsed-time stopwatch. Tapping counts a song and auto-starts the
// stopwatch; finishing reports (elapsed seconds, tap count) and resets, at
// which point the caller turns the pair into an InsertTraining.
package practice

import (
	"fmt"
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

type Session struct {
	mu          sync.Mutex
	state       State
	count       int
	accumulated time.Duration
	startedAt   time.Time

	now func() time.Time // swapped out in tests
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

// Tap counts one song. From idle or paused the stopwatch starts running.
func (s *Session) Tap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		s.startedAt = s.now()
		s.state = Running
	}
	s.count++
	return s.count
}

// Pause stops the clock without losing accumulated time.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return
	}
	s.accumulated += s.now().Sub(s.startedAt)
	s.state = Paused
}

// Resume restarts the clock after a pause.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		return
	}
	s.startedAt = s.now()
	s.state = Running
}

// Finish reports the session as (whole elapsed seconds, tap count) and
// resets everything so the next activation starts from zero.
func (s *Session) Finish() (durationSeconds, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.accumulated
	if s.state == Running {
		elapsed += s.now().Sub(s.startedAt)
	}
	durationSeconds = int(elapsed / time.Second)
	count = s.count

	s.state = Idle
	s.count = 0
	s.accumulated = 0
	return durationSeconds, count
}

// State returns the current stopwatch state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Count returns the taps so far.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Elapsed returns running time so far; the clock only advances while the
// session is in the running state.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	elapsed := s.accumulated
	if s.state == Running {
		elapsed += s.now().Sub(s.startedAt)
	}
	return elapsed
}

// Rate returns songs per minute over the elapsed time, 0 before any time
// has passed.
func (s *Session) Rate() float64 {
	elapsed := s.Elapsed().Minutes()
	if elapsed <= 0 {
		return 0
	}
	s.mu.Lock()
	count := s.count
	s.mu.Unlock()
	return float64(count) / elapsed
}

// Watch invokes fn with the elapsed whole seconds on every tick while the
// session is running, mirroring the display timer. The returned stop
// function tears the ticker down and must be called when the screen goes
// away.
func (s *Session) Watch(interval time.Duration, fn func(elapsedSeconds int)) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if s.State() == Running {
					fn(int(s.Elapsed() / time.Second))
				}
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// FormatElapsed renders seconds as the MM:SS display string.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
