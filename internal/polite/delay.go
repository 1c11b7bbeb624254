package polite

import (
	"context"
	"math/rand/v2"
	"time"
)

// DelayProfile names a jitter range for inter-request pauses.
type DelayProfile string

const (
	ProfileCautious   DelayProfile = "cautious"
	ProfileNormal     DelayProfile = "normal"
	ProfileAggressive DelayProfile = "aggressive"
	ProfileNone       DelayProfile = "none"
)

// Delay sleeps a randomized duration before each request. A nil *Delay is
// valid and waits for nothing.
type Delay struct {
	Min time.Duration
	Max time.Duration
}

// NewDelay builds a Delay for the profile. ProfileNone returns nil.
func NewDelay(profile DelayProfile) *Delay {
	switch profile {
	case ProfileCautious:
		return &Delay{Min: 2 * time.Second, Max: 5 * time.Second}
	case ProfileAggressive:
		return &Delay{Min: 100 * time.Millisecond, Max: 400 * time.Millisecond}
	case ProfileNone:
		return nil
	default:
		return &Delay{Min: 500 * time.Millisecond, Max: 1500 * time.Millisecond}
	}
}

// Wait blocks for a random duration in [Min, Max], or until ctx is done.
func (d *Delay) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}
	select {
	case <-time.After(d.duration()):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Delay) duration() time.Duration {
	if d.Min >= d.Max {
		return d.Min
	}
	return d.Min + time.Duration(rand.Int64N(int64(d.Max-d.Min)))
}
