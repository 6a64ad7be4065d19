// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// AppendDraftOption adds text to the end of the draft. Duplicates are allowed.
func (s *Store) AppendDraftOption(ctx context.Context, text string) Outcome {
	if _, err := s.exec(ctx, s.conn, s.sb.Insert("draft_session_entry").Columns("text").Values(text)); err != nil {
		return fail("append draft option", err, "text", text)
	}
	return ok
}

// RemoveDraftOption removes one entry matching text, the most recently
// appended one. KindMiss when nothing matched.
func (s *Store) RemoveDraftOption(ctx context.Context, text string) Outcome {
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var id sql.NullInt64
		if err := s.queryRow(ctx, tx, s.sb.Select("MAX(id)").From("draft_session_entry").Where(sq.Eq{"text": text}), &id); err != nil {
			return fmt.Errorf("find draft entry: %w", err)
		}
		if !id.Valid {
			return errMiss
		}

		_, err := s.exec(ctx, tx, s.sb.Delete("draft_session_entry").Where(sq.Eq{"id": id.Int64}))
		return err
	})
	if err != nil {
		return fail("remove draft option", err, "text", text)
	}
	return ok
}

// ListDraftOptions returns the draft in insertion order.
func (s *Store) ListDraftOptions(ctx context.Context) ([]string, Outcome) {
	texts, err := s.listDraft(ctx, s.conn)
	if err != nil {
		return []string{}, fail("list draft options", err)
	}
	return texts, listed(len(texts))
}

func (s *Store) listDraft(ctx context.Context, q queryer) ([]string, error) {
	rows, err := s.query(ctx, q, s.sb.Select("text").From("draft_session_entry").OrderBy("id"))
	if err != nil {
		return nil, err
	}
	return scanStrings(rows)
}

// ClearDraft empties the draft.
func (s *Store) ClearDraft(ctx context.Context) Outcome {
	if _, err := s.exec(ctx, s.conn, s.sb.Delete("draft_session_entry")); err != nil {
		return fail("clear draft", err)
	}
	return ok
}

var errEmptyDraft = errors.New("draft is empty")

// SaveDraft turns the draft into a new roulette named name, favoriting it
// when asked, and clears the draft. All of it happens in one transaction.
// An empty draft writes nothing and returns KindEmpty.
func (s *Store) SaveDraft(ctx context.Context, name string, favorite bool) (int64, Outcome) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		options, err := s.listDraft(ctx, tx)
		if err != nil {
			return fmt.Errorf("load draft: %w", err)
		}
		if len(options) == 0 {
			return errEmptyDraft
		}

		id, err = s.createRoulette(ctx, tx, name, options, favorite, false)
		if err != nil {
			return err
		}

		if _, err := s.exec(ctx, tx, s.sb.Delete("draft_session_entry")); err != nil {
			return fmt.Errorf("clear draft: %w", err)
		}
		return nil
	})
	if errors.Is(err, errEmptyDraft) {
		return 0, empty
	}
	if err != nil {
		return 0, fail("save draft", err, "name", name)
	}
	return id, ok
}
