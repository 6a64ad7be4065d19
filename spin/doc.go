// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package spin implements the decision wheel: drawing a spin and resolving
which sector ends under the pointer.

# Geometry

The wheel is split into optionCount equal sectors of 360/optionCount
degrees. Sector i spans [i*w, (i+1)*w) in wheel-local degrees, sector 0
starting at 0. The pointer is fixed at PointerAngle (270) in the same
frame. After the wheel turns to finalRotation, the wheel-local angle under
the pointer is

	(270 - finalRotation + 360) mod 360

and the winner is the sector containing it.

# Drawing a Spin

Spin drops accumulated full turns from the current rotation, then adds
3 to 5 full turns plus a uniform offset:

	plan := spin.Spin(rng, currentRotation, 2*time.Second)
	winner := spin.Resolve(plan.StartRotation, plan.SpinAngle, len(options))

Callers carry plan.FinalRotation() as the baseline for the next spin.

# Wheel

Wheel wraps the math with the state a screen needs: the rotation baseline,
a single in-flight spin, and a timer that resolves it:

	w := spin.NewWheel(spin.WithDuration(cfg.SpinDuration))
	plan, err := w.Spin(options, func(o spin.Outcome) {
		// record o.Option
	})
	...
	w.Cancel() // screen torn down, the pending outcome is dropped

A second Spin while one is pending returns ErrSpinInFlight.
*/
package spin
