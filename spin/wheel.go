// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package spin

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Outcome is a resolved spin
type Outcome struct {
	SpinID        uuid.UUID
	Index         int
	Option        string
	FinalRotation float64
	ResolvedAt    time.Time
}

// ResolveFunc receives the outcome once the spin duration has elapsed.
// It runs on the timer goroutine, outside the wheel's lock.
type ResolveFunc func(Outcome)

type pendingSpin struct {
	plan      Plan
	options   []string
	timer     clockwork.Timer
	onResolve ResolveFunc
}

// Wheel holds the rotation baseline between spins and at most one spin in
// flight. A pending spin resolves when its timer fires unless Cancel runs
// first, in which case it is discarded without calling its ResolveFunc.
type Wheel struct {
	mu       sync.Mutex
	rng      RNG
	clock    clockwork.Clock
	duration time.Duration
	rotation float64
	pending  *pendingSpin
	last     *Outcome
}

type WheelOption func(*Wheel)

func WithRNG(rng RNG) WheelOption {
	return func(w *Wheel) { w.rng = rng }
}

func WithClock(clock clockwork.Clock) WheelOption {
	return func(w *Wheel) { w.clock = clock }
}

func WithDuration(d time.Duration) WheelOption {
	return func(w *Wheel) { w.duration = d }
}

// WithRotation sets the starting baseline, e.g. restored from the screen
func WithRotation(deg float64) WheelOption {
	return func(w *Wheel) { w.rotation = Normalize(deg) }
}

func NewWheel(opts ...WheelOption) *Wheel {
	w := &Wheel{
		rng:      DefaultRNG(),
		clock:    clockwork.NewRealClock(),
		duration: DefaultDuration,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Spin starts a spin over options. It returns ErrSpinInFlight while another
// spin is pending and ErrTooFewOptions for fewer than two options.
func (w *Wheel) Spin(options []string, onResolve ResolveFunc) (Plan, error) {
	if err := CheckOptions(len(options)); err != nil {
		return Plan{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		return Plan{}, ErrSpinInFlight
	}

	plan := Spin(w.rng, w.rotation, w.duration)
	p := &pendingSpin{
		plan:      plan,
		options:   slices.Clone(options),
		onResolve: onResolve,
	}
	p.timer = w.clock.AfterFunc(plan.Duration, func() { w.complete(plan.ID) })
	w.pending = p

	slog.Debug("spin started",
		"spin_id", plan.ID,
		"options", len(options),
		"start_rotation", plan.StartRotation,
		"target_rotation", plan.TargetRotation,
	)

	return plan, nil
}

func (w *Wheel) complete(id uuid.UUID) {
	w.mu.Lock()
	p := w.pending
	if p == nil || p.plan.ID != id {
		// Cancelled before the timer fired
		w.mu.Unlock()
		return
	}

	idx := Resolve(p.plan.StartRotation, p.plan.SpinAngle, len(p.options))
	out := Outcome{
		SpinID:        id,
		Index:         idx,
		Option:        p.options[idx],
		FinalRotation: p.plan.FinalRotation(),
		ResolvedAt:    w.clock.Now(),
	}
	w.rotation = out.FinalRotation
	w.pending = nil
	w.last = &out
	w.mu.Unlock()

	slog.Debug("spin resolved", "spin_id", id, "index", idx, "option", out.Option)

	if p.onResolve != nil {
		p.onResolve(out)
	}
}

// Cancel discards the pending spin, if any. The rotation baseline stays at
// the value it had before the cancelled spin started.
func (w *Wheel) Cancel() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return false
	}
	w.pending.timer.Stop()
	slog.Debug("spin cancelled", "spin_id", w.pending.plan.ID)
	w.pending = nil
	return true
}

// Rotation is the current normalized baseline
func (w *Wheel) Rotation() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rotation
}

// Pending returns the spin in flight
func (w *Wheel) Pending() (Plan, []string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return Plan{}, nil, false
	}
	return w.pending.plan, slices.Clone(w.pending.options), true
}

// Last returns the most recent resolved outcome
func (w *Wheel) Last() (Outcome, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return Outcome{}, false
	}
	return *w.last, true
}
