package gesture

import (
	"errors"
	"sync"

	"dig2d/internal/profiling"
)

// Ticker is a resumable unit of work stepped once per Update.
type Ticker interface {
	Tick(dt float64) (Status, error)
}

// Scheduler steps active gestures in the order they were added.
type Scheduler struct {
	active []Ticker
	mu     sync.RWMutex
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		active: make([]Ticker, 0),
	}
}

// Add queues a gesture; it is first ticked on the next Update.
func (s *Scheduler) Add(t Ticker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, t)
}

// Update ticks every active gesture once and drops the finished ones.
// Failures do not stop the other gestures; they are joined into the result.
func (s *Scheduler) Update(dt float64) error {
	defer profiling.Track("gesture.Update")()
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	activeCount := 0
	for _, t := range s.active {
		status, err := t.Tick(dt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if status == StillGrowing {
			s.active[activeCount] = t
			activeCount++
		}
	}
	clear(s.active[activeCount:])
	s.active = s.active[:activeCount]
	return errors.Join(errs...)
}

// Len returns the number of active gestures.
func (s *Scheduler) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}

// Drain ticks until nothing is active or maxSteps updates ran, returning the
// number of updates performed and the joined errors.
func (s *Scheduler) Drain(dt float64, maxSteps int) (int, error) {
	var errs []error
	steps := 0
	for steps < maxSteps && s.Len() > 0 {
		if err := s.Update(dt); err != nil {
			errs = append(errs, err)
		}
		steps++
	}
	return steps, errors.Join(errs...)
}
