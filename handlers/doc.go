// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the loopback API used by the
app shell's screens.

# Handler Types

  - RouletteHandler: roulettes, favorites, presets, recorded results
  - DraftHandler: the option list of a roulette being composed
  - HistoryHandler: formatted spin history
  - WheelHandler: the server-held wheel (spin, cancel, state)

Handlers are created via constructors that take the store and whatever
policy they need:

	rh := handlers.NewRouletteHandler(st, listing.Policy{})
	wh := handlers.NewWheelHandler(st, spin.NewWheel())

# Input Rules

Names and option texts are trimmed; blank values are rejected with 400.
Saving a roulette requires at least two options, the same precondition the
wheel has.

# Store Outcomes

Store outcomes map to status codes:

	KindMiss      → 404
	KindProtected → 403
	KindFailed    → 500

# Spinning

	POST   /wheel/spin   {"roulette_id": 3}   → 202 with the spin plan
	POST   /wheel/spin                        → 202, spins the draft
	DELETE /wheel/spin                        → {"cancelled": true}
	GET    /wheel                             → rotation, pending spin, last outcome

A second spin while one is pending is rejected with 409. When the wheel
resolves, the winner of a saved roulette is recorded in history; a
cancelled spin records nothing and leaves the rotation where it was.
*/
package handlers
