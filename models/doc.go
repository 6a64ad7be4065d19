// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Roulette: id, name, is_preset (favorite marker), is_built_in (seed theme)
  - Option: one entry of a roulette
  - RouletteWithOptions: a roulette and its option texts in sector order
  - HistoryEntry: a recorded spin joined with its roulette and option

# Request Types

Types for parsing incoming JSON:

  - CreateRouletteRequest: name, options, favorite
  - UpdateRouletteRequest: name, options
  - RecordResultRequest: option
  - DraftOptionRequest: text
  - SaveDraftRequest: name, favorite
  - SpinRequest: roulette_id (optional, draft otherwise)

# Response Types

Types for JSON responses:

  - CreateRouletteResponse: roulette_id
  - RoulettesResponse: roulettes with bucket and removable flag
  - PresetsResponse: built_in and user buckets
  - DraftResponse: options
  - HistoryResponse: formatted entries
  - SpinResponse: spin plan (start, angle, target, duration)
  - WheelStateResponse: rotation, pending spin, last outcome
  - CancelSpinResponse: cancelled
  - ErrorResponse: error, message

# Timestamps

Result timestamps are stored as fixed-width ISO-8601 UTC text using
TimestampLayout, so ordering by the column orders by time.
*/
package models
