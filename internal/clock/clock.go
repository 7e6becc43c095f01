// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Package clock provides a swappable time source so code that reports
// elapsed time stays deterministic under test.
package clock

import "time"

// Clock is a minimal time source.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real is the production Clock backed by the system clock.
type Real struct{}

// Now implements Clock.
func (Real) Now() time.Time { return time.Now() }

// Since implements Clock.
func (Real) Since(t time.Time) time.Duration { return time.Since(t) }

// Frozen is a Clock pinned to a fixed instant.
type Frozen struct {
	Instant time.Time
}

// Now implements Clock.
func (f Frozen) Now() time.Time { return f.Instant }

// Since implements Clock.
func (f Frozen) Since(t time.Time) time.Duration { return f.Instant.Sub(t) }
