// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and applies the schema.

# Opening

Open picks the driver from the database type:

	conn, err := db.Open("sqlite", "quickly-spin.db")        // modernc.org/sqlite
	conn, err := db.Open("postgres", "postgres://...")       // lib/pq

SQLite paths get foreign_keys, busy_timeout and WAL pragmas and the pool
is limited to one connection.

# Migrations

Migrate applies the goose migrations embedded for the dialect:

	if err := db.Migrate(ctx, conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times.

# Tables

  - roulette: id, name, is_preset (favorite marker), is_builtin (seed theme)
  - option: id, text, roulette_id, position (sector order)
  - result: id, timestamp (ISO-8601 text), roulette_id, option_id,
    roulette_name and option_text as resolved when recorded
  - draft_session_entry: id, text (the option list being composed)

# Relationships

	roulette 1──* option
	roulette 1──* result
	result   *──1 option (by id only, no constraint)

result.option_id deliberately has no foreign key: replacing a roulette's
options deletes the old rows while their results stay in history.
*/
package db
