package locomotion

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/templewalk/core"
)

// Clock provides the current time, swapped for a mock in tests
type Clock interface {
	Now() time.Time
}

// Scheduler fires on a fixed wall-clock interval independent of frame rate
// It never touches scene state, each firing only calls post
type Scheduler struct {
	clock    Clock
	interval time.Duration
	post     func()

	nextTickDeadline time.Time
	tickCount        atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler, post is called from the scheduler goroutine
func NewScheduler(clock Clock, interval time.Duration, post func()) *Scheduler {
	return &Scheduler{
		clock:    clock,
		interval: interval,
		post:     post,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduler loop, repeated calls are ignored
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the loop and waits for it to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

// Ticks returns the number of firings so far
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	s.nextTickDeadline = s.clock.Now().Add(s.interval)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
		}

		now := s.clock.Now()
		if now.Before(s.nextTickDeadline) {
			timer.Reset(s.nextTickDeadline.Sub(now))
			continue
		}

		s.post()
		s.tickCount.Add(1)

		// Deadline advances by interval, resync when more than two intervals behind
		s.nextTickDeadline = s.nextTickDeadline.Add(s.interval)
		maxBehind := s.interval * 2
		if now.Sub(s.nextTickDeadline) > maxBehind {
			s.nextTickDeadline = now.Add(s.interval)
		}

		sleep := s.nextTickDeadline.Sub(s.clock.Now())
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
