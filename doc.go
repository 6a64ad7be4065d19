// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-spin server.

quickly-spin is the core of a decision wheel: the user enters a set of
options (or picks a saved theme), the wheel spins, and the sector that
stops under the pointer wins. Winners are kept as history and any
roulette can be saved as a favorite.

The server listens on loopback and is used by the app shell's screens.

# Starting the Server

With defaults (sqlite file quickly-spin.db on 127.0.0.1:3318):

	go run .

Against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Lifecycle

On start the store is opened, migrated and seeded with the built-in themes
(once). On SIGINT or SIGTERM the server shuts down, any spin still in flight
is cancelled without recording a result, and the store is closed.

# Architecture

  - spin: spin math and the wheel timer
  - store: roulettes, options, results, draft
  - listing: built-in/user buckets, sorting, history formatting
  - handlers, router, middleware: the loopback JSON API
  - db: drivers and migrations
  - models: shared types
  - cliparse, logging: configuration and slog setup

See package documentation for each component.
*/
package main
