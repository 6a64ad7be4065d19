// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/danielhkuo/quickly-spin/models"
)

var errProtected = errors.New("roulette is built-in")

var rouletteColumns = []string{"id", "name", "is_preset", "is_builtin"}

// CreateRoulette inserts a roulette and its options in one transaction,
// favoriting it when favorite is set. Options keep the given order.
func (s *Store) CreateRoulette(ctx context.Context, name string, options []string, favorite bool) (int64, Outcome) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.createRoulette(ctx, tx, name, options, favorite, false)
		return err
	})
	if err != nil {
		return 0, fail("create roulette", err, "name", name)
	}
	return id, ok
}

func (s *Store) createRoulette(ctx context.Context, q queryer, name string, options []string, preset, builtIn bool) (int64, error) {
	id, err := s.insertID(ctx, q, s.sb.Insert("roulette").
		Columns("name", "is_preset", "is_builtin").
		Values(name, boolInt(preset), boolInt(builtIn)))
	if err != nil {
		return 0, fmt.Errorf("insert roulette: %w", err)
	}

	if err := s.insertOptions(ctx, q, id, options); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) insertOptions(ctx context.Context, q queryer, rouletteID int64, options []string) error {
	if len(options) == 0 {
		return nil
	}

	insert := s.sb.Insert("option").Columns("text", "roulette_id", "position")
	for i, text := range options {
		insert = insert.Values(text, rouletteID, i)
	}

	if _, err := s.exec(ctx, q, insert); err != nil {
		return fmt.Errorf("insert options: %w", err)
	}
	return nil
}

// Favorite marks a roulette as a preset. Favoriting twice is a no-op.
func (s *Store) Favorite(ctx context.Context, rouletteID int64) Outcome {
	return s.setPreset(ctx, "favorite", rouletteID, true)
}

// Unfavorite clears the preset marker. The roulette and its history stay.
func (s *Store) Unfavorite(ctx context.Context, rouletteID int64) Outcome {
	return s.setPreset(ctx, "unfavorite", rouletteID, false)
}

func (s *Store) setPreset(ctx context.Context, op string, rouletteID int64, preset bool) Outcome {
	res, err := s.exec(ctx, s.conn, s.sb.Update("roulette").
		Set("is_preset", boolInt(preset)).
		Where(sq.Eq{"id": rouletteID}))
	if err == nil {
		err = mustAffect(res)
	}
	if err != nil {
		return fail(op, err, "roulette_id", rouletteID)
	}
	return ok
}

// UpdateRouletteNameAndOptions renames a roulette and replaces its whole
// option set. Results keep their option ids even though those rows go away.
func (s *Store) UpdateRouletteNameAndOptions(ctx context.Context, rouletteID int64, name string, options []string) Outcome {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := s.exec(ctx, tx, s.sb.Update("roulette").
			Set("name", name).
			Where(sq.Eq{"id": rouletteID}))
		if err != nil {
			return fmt.Errorf("rename roulette: %w", err)
		}
		if err := mustAffect(res); err != nil {
			return err
		}

		if _, err := s.exec(ctx, tx, s.sb.Delete("option").Where(sq.Eq{"roulette_id": rouletteID})); err != nil {
			return fmt.Errorf("delete options: %w", err)
		}
		return s.insertOptions(ctx, tx, rouletteID, options)
	})
	if err != nil {
		return fail("update roulette", err, "roulette_id", rouletteID)
	}
	return ok
}

// DeleteRoulette removes a user roulette with its options and results.
// Built-in roulettes are refused with KindProtected.
func (s *Store) DeleteRoulette(ctx context.Context, rouletteID int64) Outcome {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var builtIn int
		err := s.queryRow(ctx, tx, s.sb.Select("is_builtin").From("roulette").Where(sq.Eq{"id": rouletteID}), &builtIn)
		if errors.Is(err, sql.ErrNoRows) {
			return errMiss
		}
		if err != nil {
			return fmt.Errorf("load roulette: %w", err)
		}
		if builtIn != 0 {
			return errProtected
		}

		for _, table := range []string{"result", "option"} {
			if _, err := s.exec(ctx, tx, s.sb.Delete(table).Where(sq.Eq{"roulette_id": rouletteID})); err != nil {
				return fmt.Errorf("delete from %s: %w", table, err)
			}
		}
		if _, err := s.exec(ctx, tx, s.sb.Delete("roulette").Where(sq.Eq{"id": rouletteID})); err != nil {
			return fmt.Errorf("delete roulette: %w", err)
		}
		return nil
	})
	if errors.Is(err, errProtected) {
		return protected
	}
	if err != nil {
		return fail("delete roulette", err, "roulette_id", rouletteID)
	}
	return ok
}

// GetRoulette returns a roulette with its options in sector order.
func (s *Store) GetRoulette(ctx context.Context, rouletteID int64) (models.RouletteWithOptions, Outcome) {
	var out models.RouletteWithOptions

	rows, err := s.query(ctx, s.conn, s.sb.Select(rouletteColumns...).From("roulette").Where(sq.Eq{"id": rouletteID}))
	if err != nil {
		return out, fail("get roulette", err, "roulette_id", rouletteID)
	}
	found, err := scanRoulettes(rows)
	if err != nil {
		return out, fail("get roulette", err, "roulette_id", rouletteID)
	}
	if len(found) == 0 {
		return out, miss
	}

	options, outcome := s.GetOptions(ctx, rouletteID)
	if !outcome.OK() {
		return out, outcome
	}

	out.Roulette = found[0]
	out.Options = options
	return out, ok
}

// GetOptions returns the option texts of a roulette in the order written.
func (s *Store) GetOptions(ctx context.Context, rouletteID int64) ([]string, Outcome) {
	rows, err := s.query(ctx, s.conn, s.sb.Select("text").From("option").
		Where(sq.Eq{"roulette_id": rouletteID}).
		OrderBy("position", "id"))
	if err != nil {
		return []string{}, fail("get options", err, "roulette_id", rouletteID)
	}

	texts, err := scanStrings(rows)
	if err != nil {
		return []string{}, fail("get options", err, "roulette_id", rouletteID)
	}
	return texts, listed(len(texts))
}

// ListPresets returns every roulette marked as a preset.
func (s *Store) ListPresets(ctx context.Context) ([]models.Roulette, Outcome) {
	return s.listRoulettes(ctx, "list presets", sq.Eq{"is_preset": 1})
}

// ListAllRoulettes returns every roulette. Bucketing into built-in and
// user rows is left to the caller.
func (s *Store) ListAllRoulettes(ctx context.Context) ([]models.Roulette, Outcome) {
	return s.listRoulettes(ctx, "list roulettes", nil)
}

func (s *Store) listRoulettes(ctx context.Context, op string, where sq.Sqlizer) ([]models.Roulette, Outcome) {
	query := s.sb.Select(rouletteColumns...).From("roulette").OrderBy("id")
	if where != nil {
		query = query.Where(where)
	}

	rows, err := s.query(ctx, s.conn, query)
	if err != nil {
		return []models.Roulette{}, fail(op, err)
	}
	roulettes, err := scanRoulettes(rows)
	if err != nil {
		return []models.Roulette{}, fail(op, err)
	}
	return roulettes, listed(len(roulettes))
}

func scanRoulettes(rows *sql.Rows) ([]models.Roulette, error) {
	defer rows.Close()

	roulettes := []models.Roulette{}
	for rows.Next() {
		var r models.Roulette
		var preset, builtIn int
		if err := rows.Scan(&r.ID, &r.Name, &preset, &builtIn); err != nil {
			return nil, fmt.Errorf("scan roulette: %w", err)
		}
		r.IsPreset = preset != 0
		r.IsBuiltIn = builtIn != 0
		roulettes = append(roulettes, r)
	}
	return roulettes, rows.Err()
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan text: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// mustAffect turns a zero-row update into errMiss
func mustAffect(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return errMiss
	}
	return nil
}
