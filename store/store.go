// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/danielhkuo/quickly-spin/db"
	"github.com/danielhkuo/quickly-spin/models"
)

// DefaultHistoryLimit is used when ListHistory gets a non-positive limit
const DefaultHistoryLimit = 30

// Kind classifies how a store operation ended.
type Kind int

const (
	KindOK        Kind = iota // operation applied or rows returned
	KindEmpty                 // read succeeded with no rows
	KindMiss                  // referenced row did not exist; nothing written
	KindProtected             // refused: built-in roulette
	KindFailed                // underlying storage error, see Outcome.Err
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindEmpty:
		return "empty"
	case KindMiss:
		return "miss"
	case KindProtected:
		return "protected"
	case KindFailed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is returned next to every operation's value in place of an error.
type Outcome struct {
	Kind Kind
	Err  error
}

// OK reports whether the operation applied (or read) without failure.
// Empty reads count as OK.
func (o Outcome) OK() bool {
	return o.Kind == KindOK || o.Kind == KindEmpty
}

var (
	ok        = Outcome{Kind: KindOK}
	empty     = Outcome{Kind: KindEmpty}
	miss      = Outcome{Kind: KindMiss}
	protected = Outcome{Kind: KindProtected}
)

// errMiss aborts a transaction on a referential miss
var errMiss = errors.New("referenced row not found")

// Store owns the roulette, option, result and draft tables.
type Store struct {
	conn    *sql.DB
	dialect string
	sb      sq.StatementBuilderType
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the time source used for result timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open connects, migrates and returns a ready Store.
func Open(ctx context.Context, dbType, url string, opts ...Option) (*Store, error) {
	conn, err := db.Open(dbType, url)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx, conn, dbType); err != nil {
		conn.Close()
		return nil, err
	}

	return New(conn, dbType, opts...), nil
}

// New wraps an already migrated connection.
func New(conn *sql.DB, dialect string, opts ...Option) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == db.TypePostgres {
		placeholder = sq.Dollar
	}

	s := &Store{
		conn:    conn,
		dialect: dialect,
		sb:      sq.StatementBuilder.PlaceholderFormat(placeholder),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the connection. Safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// DB exposes the underlying connection for health checks
func (s *Store) DB() *sql.DB {
	return s.conn
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) exec(ctx context.Context, q queryer, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.ExecContext(ctx, query, args...)
}

func (s *Store) query(ctx context.Context, q queryer, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryContext(ctx, query, args...)
}

func (s *Store) queryRow(ctx context.Context, q queryer, b sq.Sqlizer, dest ...any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	return q.QueryRowContext(ctx, query, args...).Scan(dest...)
}

// insertID runs an INSERT ... RETURNING id
func (s *Store) insertID(ctx context.Context, q queryer, b sq.InsertBuilder) (int64, error) {
	var id int64
	if err := s.queryRow(ctx, q, b.Suffix("RETURNING id"), &id); err != nil {
		return 0, err
	}
	return id, nil
}

// inTx runs fn in a transaction. fn must use the given tx for every
// statement: sqlite is limited to one open connection.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// fail logs err under op and converts it to an Outcome
func fail(op string, err error, args ...any) Outcome {
	if errors.Is(err, errMiss) {
		slog.Debug("store referential miss", append([]any{"op", op}, args...)...)
		return miss
	}
	slog.Error("store operation failed", append([]any{"op", op, "error", err}, args...)...)
	return Outcome{Kind: KindFailed, Err: err}
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(models.TimestampLayout)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// listed returns ok, or empty when n is zero
func listed(n int) Outcome {
	if n == 0 {
		return empty
	}
	return ok
}
