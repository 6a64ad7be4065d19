// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists roulettes, their options, spin results and the draft
option list.

# Lifecycle

A Store is constructed once at startup and closed on exit:

	st, err := store.Open(ctx, "sqlite", "quickly-spin.db")
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	st.Seed(ctx)

Open runs the migrations; New wraps a connection that is already migrated.

# Outcomes

Operations do not return errors. Each returns its value next to an Outcome:

	id, out := st.CreateRoulette(ctx, "Dinner", []string{"Pizza", "Sushi"}, false)
	switch out.Kind {
	case store.KindOK:
	case store.KindFailed:
		// out.Err holds the cause; it has already been logged
	}

Read operations always return a non-nil slice, empty on failure. KindMiss
means a referenced row did not exist and nothing was written (for example
RecordResult for text no longer among the roulette's options).
KindProtected is returned by DeleteRoulette for built-in roulettes.

# Transactions

CreateRoulette, UpdateRouletteNameAndOptions, RecordResult, DeleteRoulette,
SaveDraft, RemoveDraftOption and Seed each run in a single transaction, so
partial writes are never visible.

# History

Results keep the roulette name and option text they resolved to when
recorded. Renaming a roulette or replacing its options does not change
what history shows; ListHistory also reports the live names, nil once the
row is gone.
*/
package store
