// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/testutil"
)

func TestCreateRoulette(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})

	w := env.do("POST", "/roulettes", models.CreateRouletteRequest{
		Name:    "  Dinner ",
		Options: []string{" Pizza", "Sushi "},
	})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateRouletteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.RouletteID == 0 {
		t.Fatal("Expected roulette_id")
	}

	w = env.do("GET", fmt.Sprintf("/roulettes/%d", resp.RouletteID), nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.RouletteWithOptions
	testutil.AssertJSON(t, w, &got)
	if got.Roulette.Name != "Dinner" {
		t.Errorf("Expected trimmed name 'Dinner', got %q", got.Roulette.Name)
	}
	if len(got.Options) != 2 || got.Options[0] != "Pizza" || got.Options[1] != "Sushi" {
		t.Errorf("Unexpected options %v", got.Options)
	}
}

func TestCreateRoulette_Validation(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})

	testCases := []struct {
		name string
		req  models.CreateRouletteRequest
	}{
		{"missing name", models.CreateRouletteRequest{Options: []string{"A", "B"}}},
		{"blank name", models.CreateRouletteRequest{Name: "   ", Options: []string{"A", "B"}}},
		{"one option", models.CreateRouletteRequest{Name: "X", Options: []string{"A"}}},
		{"blank option", models.CreateRouletteRequest{Name: "X", Options: []string{"A", " "}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do("POST", "/roulettes", tc.req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}

	w := env.do("GET", "/roulettes", nil)
	var resp models.RoulettesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Roulettes) != 0 {
		t.Errorf("Expected nothing created, got %d", len(resp.Roulettes))
	}
}

func TestGetRoulette_NotFound(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})

	testutil.AssertStatus(t, env.do("GET", "/roulettes/404", nil), http.StatusNotFound)
	testutil.AssertStatus(t, env.do("GET", "/roulettes/abc", nil), http.StatusBadRequest)
}

func TestUpdateRoulette(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})
	id := testutil.CreateTestRoulette(t, env.st, "Dinner", "Pizza", "Sushi")

	w := env.do("PUT", fmt.Sprintf("/roulettes/%d", id), models.UpdateRouletteRequest{
		Name:    "Lunch",
		Options: []string{"Tacos", "Curry", "Soup"},
	})
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.RouletteWithOptions
	testutil.AssertJSON(t, w, &got)
	if got.Roulette.Name != "Lunch" || len(got.Options) != 3 {
		t.Errorf("Unexpected roulette after update: %+v", got)
	}

	w = env.do("PUT", "/roulettes/999", models.UpdateRouletteRequest{Name: "X", Options: []string{"A", "B"}})
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestFavoriteToggle(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})
	id := testutil.CreateTestRoulette(t, env.st, "Drinks", "Tea", "Coffee")
	path := fmt.Sprintf("/roulettes/%d/favorite", id)

	// Favoriting twice is fine
	testutil.AssertStatus(t, env.do("POST", path, nil), http.StatusNoContent)
	testutil.AssertStatus(t, env.do("POST", path, nil), http.StatusNoContent)

	w := env.do("GET", "/presets", nil)
	var presets models.PresetsResponse
	testutil.AssertJSON(t, w, &presets)
	if len(presets.User) != 1 || presets.User[0].ID != id {
		t.Fatalf("Expected roulette in user presets, got %+v", presets)
	}

	testutil.AssertStatus(t, env.do("DELETE", path, nil), http.StatusNoContent)

	w = env.do("GET", "/presets", nil)
	presets = models.PresetsResponse{}
	testutil.AssertJSON(t, w, &presets)
	if len(presets.User) != 0 {
		t.Errorf("Expected no user presets after unfavorite, got %d", len(presets.User))
	}

	testutil.AssertStatus(t, env.do("POST", "/roulettes/999/favorite", nil), http.StatusNotFound)
}

func TestListPresets_BucketsAndSorting(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})
	ctx := context.Background()
	env.st.Seed(ctx)
	env.st.CreateRoulette(ctx, "zoo trip", []string{"Lions", "Bears"}, true)
	env.st.CreateRoulette(ctx, "Arcade", []string{"Pinball", "Racing"}, true)
	env.st.CreateRoulette(ctx, "Not a favorite", []string{"A", "B"}, false)

	w := env.do("GET", "/presets", nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	var presets models.PresetsResponse
	testutil.AssertJSON(t, w, &presets)

	expectedBuiltIn := []string{"Dinner", "Drinks", "Movies", "Weekend"}
	if len(presets.BuiltIn) != len(expectedBuiltIn) {
		t.Fatalf("Expected %d built-ins, got %d", len(expectedBuiltIn), len(presets.BuiltIn))
	}
	for i, name := range expectedBuiltIn {
		if presets.BuiltIn[i].Name != name {
			t.Errorf("built_in[%d]: expected %s, got %s", i, name, presets.BuiltIn[i].Name)
		}
		if presets.BuiltIn[i].Removable {
			t.Errorf("built-in %s should not be removable", name)
		}
	}

	if len(presets.User) != 2 || presets.User[0].Name != "Arcade" || presets.User[1].Name != "zoo trip" {
		t.Errorf("Unexpected user presets %+v", presets.User)
	}
}

func TestDeleteRoulette(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})
	ctx := context.Background()
	env.st.Seed(ctx)
	id := testutil.CreateTestRoulette(t, env.st, "Temp", "A", "B")

	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d", id), nil), http.StatusNoContent)
	testutil.AssertStatus(t, env.do("GET", fmt.Sprintf("/roulettes/%d", id), nil), http.StatusNotFound)
	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d", id), nil), http.StatusNotFound)

	// Seeded themes are protected
	all, _ := env.st.ListAllRoulettes(ctx)
	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d", all[0].ID), nil), http.StatusForbidden)
}

func TestDeleteRoulette_LegacyThreshold(t *testing.T) {
	env := newTestEnv(t, listing.Policy{LegacyBuiltInMaxID: 1})
	id := testutil.CreateTestRoulette(t, env.st, "Old theme", "A", "B")

	testutil.AssertStatus(t, env.do("DELETE", fmt.Sprintf("/roulettes/%d", id), nil), http.StatusForbidden)

	w := env.do("GET", "/roulettes", nil)
	var resp models.RoulettesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Roulettes) != 1 || resp.Roulettes[0].Bucket != models.BucketBuiltIn {
		t.Errorf("Expected legacy row in built-in bucket, got %+v", resp.Roulettes)
	}
}

func TestRecordResult(t *testing.T) {
	env := newTestEnv(t, listing.Policy{})
	id := testutil.CreateTestRoulette(t, env.st, "Dinner", "Pizza", "Sushi")
	path := fmt.Sprintf("/roulettes/%d/results", id)

	w := env.do("POST", path, models.RecordResultRequest{Option: "Pizza"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.RecordResultResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ResultID == 0 {
		t.Error("Expected result_id")
	}

	testutil.AssertStatus(t, env.do("POST", path, models.RecordResultRequest{Option: "Burger"}), http.StatusNotFound)
	testutil.AssertStatus(t, env.do("POST", path, models.RecordResultRequest{Option: " "}), http.StatusBadRequest)
}
