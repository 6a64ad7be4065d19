// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/testutil"
)

// TestFullSpinWorkflow tests the complete end-to-end workflow:
// 1. Compose a draft
// 2. Save it as a favorite
// 3. Spin it and let the wheel resolve
// 4. Edit the roulette
// 5. History still shows the spin as it happened
// 6. Unfavorite and delete it
func TestFullSpinWorkflow(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})

	// Step 1: Compose a draft
	for _, text := range []string{"Pizza", "Sushi", "Tacos", "Ramen"} {
		w := env.do("POST", "/draft/options", models.DraftOptionRequest{Text: text})
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Add %q failed: %d - %s", text, w.Code, w.Body.String())
		}
	}

	// Step 2: Save as favorite
	w := env.do("POST", "/draft/save", models.SaveDraftRequest{Name: "Dinner", Favorite: true})
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 2 - Save draft failed: %d - %s", w.Code, w.Body.String())
	}
	var created models.CreateRouletteResponse
	testutil.AssertJSON(t, w, &created)
	id := created.RouletteID
	t.Logf("Step 2 - Saved roulette %d", id)

	// Step 3: Spin
	w = env.do("POST", "/wheel/spin", models.SpinRequest{RouletteID: &id})
	if w.Code != http.StatusAccepted {
		t.Fatalf("Step 3 - Spin failed: %d - %s", w.Code, w.Body.String())
	}
	env.clock.Advance(2 * time.Second)
	outcome := env.waitForOutcome(t)
	if outcome.Option != "Ramen" || !outcome.Recorded {
		t.Fatalf("Step 3 - Unexpected outcome %+v", outcome)
	}

	// Step 4: Edit
	w = env.do("PUT", fmt.Sprintf("/roulettes/%d", id), models.UpdateRouletteRequest{
		Name:    "Supper",
		Options: []string{"Curry", "Soup"},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 5: History
	w = env.do("GET", "/history", nil)
	var history models.HistoryResponse
	testutil.AssertJSON(t, w, &history)
	if len(history.Entries) != 1 {
		t.Fatalf("Step 5 - Expected 1 history entry, got %d", len(history.Entries))
	}
	entry := history.Entries[0]
	if entry.RouletteName != "Dinner" || entry.OptionText != "Ramen" {
		t.Errorf("Step 5 - History changed after edit: %+v", entry)
	}
	if entry.CurrentRouletteName == nil || *entry.CurrentRouletteName != "Supper" {
		t.Error("Step 5 - Expected current roulette name")
	}
	if !entry.Starred {
		t.Error("Step 5 - Expected favorite to be starred")
	}

	// Step 6: Unfavorite, then delete
	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d/favorite", id), nil), http.StatusNoContent)
	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d", id), nil), http.StatusNoContent)

	w = env.do("GET", "/history", nil)
	history = models.HistoryResponse{}
	testutil.AssertJSON(t, w, &history)
	if len(history.Entries) != 0 {
		t.Errorf("Step 6 - Expected deleted roulette's history gone, got %d", len(history.Entries))
	}
}
