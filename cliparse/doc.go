// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: Listen host (default: 127.0.0.1, the API is for the local app shell)
  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: SQLite file path or PostgreSQL DSN (default: quickly-spin.db)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text, json, auto (default: auto)
  - HistoryLimit: Default history page size (default: 30)
  - SpinDuration: Wheel animation duration (default: 2s)
  - LegacyBuiltInMaxID: ids up to this value list as built-in (default: 0, off)

# CLI Flags

	-host            Listen host
	-p               Server port
	-d               Database URL
	-t               Database type
	-log-level       Log level
	-log-format      Log format
	-history-limit   History page size
	-spin-duration   Spin duration
	-legacy-builtin-max-id  Legacy built-in id threshold
	-env-file        Dotenv file (default: .env, missing file is ignored)

# Environment Variables

Flags fall back to environment variables:

	HOST           → -host
	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	LOG_LEVEL      → -log-level
	LOG_FORMAT     → -log-format
	HISTORY_LIMIT  → -history-limit
	SPIN_DURATION  → -spin-duration
	LEGACY_BUILTIN_MAX_ID → -legacy-builtin-max-id

Precedence is CLI flags, then the process environment, then the dotenv
file, then defaults.

# Validation

ParseFlags returns an error when:

  - DATABASE_TYPE is not sqlite or postgres
  - PORT is outside 1-65535
  - HISTORY_LIMIT or SPIN_DURATION is not positive
*/
package cliparse
