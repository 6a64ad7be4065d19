// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Theme is a built-in roulette inserted on first run
type Theme struct {
	Name    string
	Options []string
}

// BuiltInThemes are seeded as built-in presets, in this order.
var BuiltInThemes = []Theme{
	{Name: "Movies", Options: []string{"Inception", "The Matrix", "Interstellar", "Parasite", "Spirited Away", "The Godfather"}},
	{Name: "Dinner", Options: []string{"Pizza", "Sushi", "Tacos", "Burger", "Ramen", "Salad"}},
	{Name: "Weekend", Options: []string{"Hiking", "Cinema", "Board games", "Beach", "Museum"}},
	{Name: "Drinks", Options: []string{"Coffee", "Tea", "Juice", "Lemonade", "Smoothie"}},
}

// Seed inserts BuiltInThemes and one sample result when the store has no
// built-in roulettes yet. Reports whether anything was inserted; running it
// again is a no-op.
func (s *Store) Seed(ctx context.Context) (bool, Outcome) {
	seeded := false
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := s.queryRow(ctx, tx, s.sb.Select("COUNT(*)").From("roulette").Where(sq.Eq{"is_builtin": 1}), &n); err != nil {
			return fmt.Errorf("count built-ins: %w", err)
		}
		if n > 0 {
			return nil
		}

		var first int64
		for i, theme := range BuiltInThemes {
			id, err := s.createRoulette(ctx, tx, theme.Name, theme.Options, true, true)
			if err != nil {
				return fmt.Errorf("seed %s: %w", theme.Name, err)
			}
			if i == 0 {
				first = id
			}
		}

		if _, err := s.recordResult(ctx, tx, first, BuiltInThemes[0].Options[0], s.timestamp()); err != nil {
			return fmt.Errorf("seed result: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, fail("seed", err)
	}
	return seeded, ok
}
