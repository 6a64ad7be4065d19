// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package listing turns store rows into the lists screens show.

The store only reports flags. Deciding that a roulette is built-in (not
removable) or user-created happens here, in Policy:

	p := listing.Policy{}
	p.Classify(r)   // "built_in" when r.IsBuiltIn, else "user"

LegacyBuiltInMaxID additionally treats low ids as built-in, for databases
whose seed rows predate the is_builtin column.

Preset listings are split per bucket and sorted with golang.org/x/text
collation, case-insensitively, for the caller's language.

History items get an absolute time (dd/mm/yyyy hh:mm:ss), a relative one
("3 minutes ago") and a star when the roulette is a user-created favorite.
*/
package listing
