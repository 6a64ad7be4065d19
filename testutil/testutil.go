// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/db"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresTestsEnv enables the container-backed postgres tests when set
const PostgresTestsEnv = "QUICKLY_SPIN_PG_TESTS"

var (
	pgOnce sync.Once
	pgDSN  string
	pgErr  error
)

// SetupTestStore opens a migrated sqlite store in a temp directory.
// The store is closed when the test ends.
func SetupTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(context.Background(), db.TypeSQLite, path, opts...)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// SetupPostgresStore opens a store on a shared postgres container, started
// once per test binary. Tables are emptied for every caller. Skipped under
// -short or unless PostgresTestsEnv is set.
func SetupPostgresStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	if testing.Short() || os.Getenv(PostgresTestsEnv) == "" {
		t.Skipf("postgres tests disabled (set %s)", PostgresTestsEnv)
	}

	pgOnce.Do(func() {
		pgDSN, pgErr = startPostgres()
	})
	if pgErr != nil {
		t.Fatalf("Failed to start postgres: %v", pgErr)
	}

	st, err := store.Open(context.Background(), db.TypePostgres, pgDSN, opts...)
	if err != nil {
		t.Fatalf("Failed to open postgres store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	_, err = st.DB().Exec(`TRUNCATE result, option, roulette, draft_session_entry RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	return st
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "quicklyspin",
				"POSTGRES_PASSWORD": "testpass",
				"POSTGRES_DB":       "quickly_spin_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://quicklyspin:testpass@%s:%s/quickly_spin_test?sslmode=disable", host, port.Port()), nil
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:         "127.0.0.1",
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		LogLevel:     "error",
		LogFormat:    "json",
		HistoryLimit: 30,
		SpinDuration: 2 * time.Second,
	}
}

// CreateTestRoulette creates a roulette and returns its ID
func CreateTestRoulette(t *testing.T, st *store.Store, name string, options ...string) int64 {
	t.Helper()

	id, out := st.CreateRoulette(context.Background(), name, options, false)
	if out.Kind != store.KindOK {
		t.Fatalf("Failed to create test roulette: %v (%v)", out.Kind, out.Err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
