// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/danielhkuo/quickly-spin/models"
)

// RecordResult stores a completed spin of rouletteID that landed on
// optionText. When no live option of that roulette has the text, nothing
// is written and the outcome is KindMiss.
func (s *Store) RecordResult(ctx context.Context, rouletteID int64, optionText string) (int64, Outcome) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.recordResult(ctx, tx, rouletteID, optionText, s.timestamp())
		return err
	})
	if err != nil {
		return 0, fail("record result", err, "roulette_id", rouletteID, "option", optionText)
	}
	return id, ok
}

func (s *Store) recordResult(ctx context.Context, q queryer, rouletteID int64, optionText, timestamp string) (int64, error) {
	var optionID int64
	var rouletteName string
	err := s.queryRow(ctx, q, s.sb.Select("o.id", "r.name").
		From("option o").
		Join("roulette r ON r.id = o.roulette_id").
		Where(sq.Eq{"o.roulette_id": rouletteID, "o.text": optionText}).
		OrderBy("o.position", "o.id").
		Limit(1), &optionID, &rouletteName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, errMiss
	}
	if err != nil {
		return 0, fmt.Errorf("find option: %w", err)
	}

	id, err := s.insertID(ctx, q, s.sb.Insert("result").
		Columns("timestamp", "roulette_id", "option_id", "roulette_name", "option_text").
		Values(timestamp, rouletteID, optionID, rouletteName, optionText))
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	return id, nil
}

// ListHistory returns up to limit results, newest first. Each entry carries
// the names as they were when recorded plus the live ones, if any.
func (s *Store) ListHistory(ctx context.Context, limit int) ([]models.HistoryEntry, Outcome) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.query(ctx, s.conn, s.sb.Select(
		"res.id", "res.timestamp", "res.roulette_id", "res.option_id",
		"res.roulette_name", "res.option_text",
		"rl.name", "o.text",
		"COALESCE(rl.is_preset, 0)", "COALESCE(rl.is_builtin, 0)",
	).
		From("result res").
		LeftJoin("roulette rl ON rl.id = res.roulette_id").
		LeftJoin("option o ON o.id = res.option_id").
		OrderBy("res.timestamp DESC", "res.id DESC").
		Limit(uint64(limit)))
	if err != nil {
		return []models.HistoryEntry{}, fail("list history", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		var ts string
		var currentName, currentText sql.NullString
		var preset, builtIn int
		if err := rows.Scan(&e.ResultID, &ts, &e.RouletteID, &e.OptionID,
			&e.RouletteName, &e.OptionText, &currentName, &currentText,
			&preset, &builtIn); err != nil {
			return []models.HistoryEntry{}, fail("list history", fmt.Errorf("scan result: %w", err))
		}

		e.Timestamp, err = time.Parse(models.TimestampLayout, ts)
		if err != nil {
			return []models.HistoryEntry{}, fail("list history", fmt.Errorf("parse timestamp %q: %w", ts, err))
		}
		if currentName.Valid {
			e.CurrentRouletteName = &currentName.String
		}
		if currentText.Valid {
			e.CurrentOptionText = &currentText.String
		}
		e.IsPreset = preset != 0
		e.IsBuiltIn = builtIn != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return []models.HistoryEntry{}, fail("list history", err)
	}

	return entries, listed(len(entries))
}
