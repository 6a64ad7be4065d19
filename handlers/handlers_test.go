// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/testutil"
	"github.com/jonboulle/clockwork"
)

// constRNG always draws the same value
type constRNG float64

func (c constRNG) Float64() float64 { return float64(c) }

type testEnv struct {
	mux   *http.ServeMux
	st    *store.Store
	clock *clockwork.FakeClock
}

// newTestEnv wires every handler onto a mux with a fake-clock wheel.
// constRNG(0) spins exactly three turns, so from rotation 0 the pointer
// rests at wheel angle 270 (index 1 of 2, index 3 of 4).
func newTestEnv(t *testing.T, policy listing.Policy) *testEnv {
	t.Helper()

	st := testutil.SetupTestStore(t)
	clock := clockwork.NewFakeClock()
	wheel := spin.NewWheel(
		spin.WithClock(clock),
		spin.WithRNG(constRNG(0)),
		spin.WithDuration(2*time.Second),
	)
	t.Cleanup(func() { wheel.Cancel() })

	rh := NewRouletteHandler(st, policy)
	dh := NewDraftHandler(st)
	hh := NewHistoryHandler(st, policy, 30)
	wh := NewWheelHandler(st, wheel)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /roulettes", rh.ListRoulettes)
	mux.HandleFunc("POST /roulettes", rh.CreateRoulette)
	mux.HandleFunc("GET /roulettes/{id}", rh.GetRoulette)
	mux.HandleFunc("PUT /roulettes/{id}", rh.UpdateRoulette)
	mux.HandleFunc("DELETE /roulettes/{id}", rh.DeleteRoulette)
	mux.HandleFunc("POST /roulettes/{id}/favorite", rh.Favorite)
	mux.HandleFunc("DELETE /roulettes/{id}/favorite", rh.Unfavorite)
	mux.HandleFunc("POST /roulettes/{id}/results", rh.RecordResult)
	mux.HandleFunc("GET /presets", rh.ListPresets)
	mux.HandleFunc("GET /history", hh.GetHistory)
	mux.HandleFunc("GET /draft", dh.GetDraft)
	mux.HandleFunc("POST /draft/options", dh.AddOption)
	mux.HandleFunc("DELETE /draft/options", dh.RemoveOption)
	mux.HandleFunc("DELETE /draft", dh.ClearDraft)
	mux.HandleFunc("POST /draft/save", dh.SaveDraft)
	mux.HandleFunc("POST /wheel/spin", wh.Spin)
	mux.HandleFunc("DELETE /wheel/spin", wh.Cancel)
	mux.HandleFunc("GET /wheel", wh.GetState)

	return &testEnv{mux: mux, st: st, clock: clock}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, testutil.MakeRequest(method, path, body))
	return w
}

// waitForOutcome polls GET /wheel until a resolved spin is reported
func (e *testEnv) waitForOutcome(t *testing.T) models.SpinOutcome {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := e.do("GET", "/wheel", nil)
		var state models.WheelStateResponse
		testutil.AssertJSON(t, w, &state)
		if state.LastOutcome != nil {
			return *state.LastOutcome
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("spin did not resolve")
	return models.SpinOutcome{}
}

func TestWriteOutcome(t *testing.T) {
	testCases := []struct {
		kind     store.Kind
		expected int
	}{
		{store.KindMiss, http.StatusNotFound},
		{store.KindProtected, http.StatusForbidden},
		{store.KindFailed, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			w := httptest.NewRecorder()
			writeOutcome(w, store.Outcome{Kind: tc.kind}, "missing")
			testutil.AssertStatus(t, w, tc.expected)
		})
	}
}

func TestCleanOptions(t *testing.T) {
	got, ok := cleanOptions([]string{"  Pizza ", "Sushi"})
	if !ok || len(got) != 2 || got[0] != "Pizza" {
		t.Errorf("Unexpected result %v %v", got, ok)
	}

	if _, ok := cleanOptions([]string{"Pizza", "   "}); ok {
		t.Error("Expected blank option to be rejected")
	}
}

func TestRequestLanguage(t *testing.T) {
	req := httptest.NewRequest("GET", "/presets", nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.5")
	if got := requestLanguage(req).String(); got != "pt-BR" {
		t.Errorf("Expected pt-BR, got %s", got)
	}

	req.Header.Del("Accept-Language")
	if got := requestLanguage(req).String(); got != "und" {
		t.Errorf("Expected und, got %s", got)
	}
}
