// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/paddockgames/loadout-api/internal/pkg/clock Clock,Scheduler

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Scheduler schedules deferred callbacks. The respawn retry loop depends
// on it so tests can fire timers deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback
type Timer interface {
	Stop() bool
}

// RealScheduler implements Scheduler on top of time.AfterFunc
type RealScheduler struct{}

// AfterFunc schedules f to run after d
func (s *RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewScheduler returns a scheduler backed by real timers
func NewScheduler() Scheduler {
	return &RealScheduler{}
}
