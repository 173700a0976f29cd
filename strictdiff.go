// Package strictdiff computes, serializes and re-applies textual revisions.
//
// Given two strings it produces a compact edit script describing how the
// first becomes the second, compresses that script into a Revision suitable
// for transport, and can apply a chain of revisions to reconstruct later
// versions of a text. Patch application is strict: a revision describes the
// original text at exact positions, and applying it to anything of a
// different shape fails rather than searching for a nearby match.
package strictdiff

import (
	"time"
)

// Config is the configuration for diff operations. The zero value disables
// the deadline and all speedups, yielding a deterministic optimal diff.
type Config struct {
	// DiffTimeout is the wall-clock budget for a single diff computation.
	// Once exceeded, the bisection abandons its search and falls back to a
	// coarse delete+insert pair. 0 or negative disables the deadline; the
	// diff is then unbounded in time. Disabling the deadline does not turn
	// off UseHalfMatch or line mode, which can still produce non-minimal
	// diffs.
	DiffTimeout time.Duration
	// UseHalfMatch enables the half-match speedup, which divides the
	// problem around a large substring common to both texts. This can
	// produce non-minimal diffs.
	UseHalfMatch bool
	// DiffEditCost is the cost of an empty edit operation in terms of edit
	// characters, used by DiffCleanupEfficiency.
	DiffEditCost int
	// LineModeThreshold is the length in runes both texts must exceed
	// before the engine runs a line-granularity first pass. 0 or negative
	// disables line mode.
	LineModeThreshold int
	// Now is the clock consulted for deadline checks. Nil means time.Now.
	Now func() time.Time
}

// NewDefaultConfig creates a new configuration with default parameters.
func NewDefaultConfig() *Config {
	return &Config{
		DiffTimeout:       time.Second,
		UseHalfMatch:      true,
		DiffEditCost:      4,
		LineModeThreshold: 100,
	}
}

func (config *Config) now() time.Time {
	if config.Now != nil {
		return config.Now()
	}
	return time.Now()
}

// deadline computes the cutoff for a diff computation starting now. The
// zero time means no deadline.
func (config *Config) deadline() time.Time {
	if config.DiffTimeout <= 0 {
		return time.Time{}
	}
	return config.now().Add(config.DiffTimeout)
}
