// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickly-spin loopback API.

# Route Registration

	mux := router.NewRouter(st, wheel, cfg)

# Endpoints

Health:

	GET /health

Roulettes:

	GET    /roulettes                - All roulettes with their bucket
	POST   /roulettes                - Create
	GET    /roulettes/{id}           - Roulette and options
	PUT    /roulettes/{id}           - Rename and replace options
	DELETE /roulettes/{id}           - Delete (user roulettes only)
	POST   /roulettes/{id}/favorite  - Favorite
	DELETE /roulettes/{id}/favorite  - Unfavorite
	POST   /roulettes/{id}/results   - Record a spin result
	GET    /presets                  - Favorites split into built-in and user

History:

	GET /history?limit=N&tz=Zone

Draft:

	GET    /draft
	POST   /draft/options
	DELETE /draft/options?text=...
	DELETE /draft
	POST   /draft/save

Wheel:

	POST   /wheel/spin
	DELETE /wheel/spin
	GET    /wheel

The listing policy (legacy built-in threshold) and the default history
size come from cliparse.Config.
*/
package router
