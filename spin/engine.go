// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spin

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	// PointerAngle is where the indicator sits, in the frame where sector 0 starts at 0°
	PointerAngle = 270.0

	// A spin covers MinTurns to MinTurns+ExtraTurns full turns plus a random offset
	MinTurns   = 3.0
	ExtraTurns = 2.0

	DefaultDuration = 2000 * time.Millisecond
)

var (
	ErrTooFewOptions = errors.New("at least two options are required to spin")
	ErrSpinInFlight  = errors.New("a spin is already in flight")
)

// RNG is a uniform source over [0, 1). *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
}

// globalRNG delegates to math/rand/v2 (auto-seeded)
type globalRNG struct{}

func (globalRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG returns the auto-seeded process generator
func DefaultRNG() RNG { return globalRNG{} }

// Plan is one spin: where it starts, how far it travels and for how long.
type Plan struct {
	ID             uuid.UUID
	StartRotation  float64 // normalized to [0, 360)
	SpinAngle      float64
	TargetRotation float64 // StartRotation + SpinAngle, not normalized
	Duration       time.Duration
}

// FinalRotation is the resting rotation, the baseline for the next spin
func (p Plan) FinalRotation() float64 {
	return Normalize(p.TargetRotation)
}

// CheckOptions is the caller-side guard for Spin and Resolve
func CheckOptions(optionCount int) error {
	if optionCount < 2 {
		return ErrTooFewOptions
	}
	return nil
}

// Normalize folds an angle in degrees into [0, 360).
func Normalize(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	// -ε + 360 rounds to 360
	if r >= 360 {
		r = 0
	}
	return r
}

// Spin draws a new spin starting from currentRotation. Accumulated full
// turns are dropped first so the rotation never grows without bound.
func Spin(rng RNG, currentRotation float64, duration time.Duration) Plan {
	if duration <= 0 {
		duration = DefaultDuration
	}

	start := Normalize(currentRotation)
	turns := MinTurns + rng.Float64()*ExtraTurns
	offset := rng.Float64() * 360
	angle := 360*turns + offset

	return Plan{
		ID:             uuid.New(),
		StartRotation:  start,
		SpinAngle:      angle,
		TargetRotation: start + angle,
		Duration:       duration,
	}
}

// Resolve returns the index of the sector under the pointer once the wheel
// has turned spinAngle degrees from normalizedCurrentRotation.
//
// optionCount must be at least 2; see CheckOptions.
func Resolve(normalizedCurrentRotation, spinAngle float64, optionCount int) int {
	final := Normalize(normalizedCurrentRotation + spinAngle)
	return SectorUnderPointer(final, optionCount)
}

// SectorUnderPointer maps a resting rotation to the sector index under the pointer
func SectorUnderPointer(finalRotation float64, optionCount int) int {
	return SectorAt(Normalize(PointerAngle-finalRotation+360), optionCount)
}

// SectorAt returns the sector containing a wheel-local angle. Sector i spans
// [i*w, (i+1)*w) with w = 360/optionCount. A quotient that rounds up to
// optionCount clamps to the last sector.
func SectorAt(wheelAngle float64, optionCount int) int {
	width := 360 / float64(optionCount)
	idx := int(math.Floor(Normalize(wheelAngle) / width))
	if idx < 0 {
		return 0
	}
	if idx > optionCount-1 {
		return optionCount - 1
	}
	return idx
}
