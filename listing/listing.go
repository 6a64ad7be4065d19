// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package listing

import (
	"slices"
	"time"

	"github.com/danielhkuo/quickly-spin/models"
	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// WhenFormat is the absolute timestamp shown in history
const WhenFormat = "%d/%m/%Y %H:%M:%S"

// Policy decides which roulettes are built-in.
type Policy struct {
	// LegacyBuiltInMaxID treats ids up to this value as built-in for stores
	// seeded before the flag existed. Zero disables it.
	LegacyBuiltInMaxID int64
}

// Classify returns BucketBuiltIn or BucketUser for r.
func (p Policy) Classify(r models.Roulette) string {
	if r.IsBuiltIn || (p.LegacyBuiltInMaxID > 0 && r.ID <= p.LegacyBuiltInMaxID) {
		return models.BucketBuiltIn
	}
	return models.BucketUser
}

// Removable reports whether r may be deleted
func (p Policy) Removable(r models.Roulette) bool {
	return p.Classify(r) == models.BucketUser
}

// List annotates roulettes with their bucket, keeping the input order.
func (p Policy) List(roulettes []models.Roulette) []models.ListedRoulette {
	out := make([]models.ListedRoulette, 0, len(roulettes))
	for _, r := range roulettes {
		out = append(out, models.ListedRoulette{
			ID:        r.ID,
			Name:      r.Name,
			IsPreset:  r.IsPreset,
			Bucket:    p.Classify(r),
			Removable: p.Removable(r),
		})
	}
	return out
}

// SplitPresets buckets presets into built-in and user lists, each sorted by
// name for the given language.
func (p Policy) SplitPresets(presets []models.Roulette, tag language.Tag) models.PresetsResponse {
	resp := models.PresetsResponse{
		BuiltIn: []models.ListedRoulette{},
		User:    []models.ListedRoulette{},
	}
	for _, item := range p.List(presets) {
		if item.Bucket == models.BucketBuiltIn {
			resp.BuiltIn = append(resp.BuiltIn, item)
		} else {
			resp.User = append(resp.User, item)
		}
	}

	SortByName(resp.BuiltIn, tag)
	SortByName(resp.User, tag)
	return resp
}

// SortByName sorts items in place by name using the collation rules of tag.
// Equal names keep their relative order.
func SortByName(items []models.ListedRoulette, tag language.Tag) {
	c := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(items, func(a, b models.ListedRoulette) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// FormatHistory prepares history entries for display. now anchors the
// relative "ago" text; loc is the zone for the absolute time.
func (p Policy) FormatHistory(entries []models.HistoryEntry, now time.Time, loc *time.Location) []models.HistoryItem {
	if loc == nil {
		loc = time.Local
	}

	items := make([]models.HistoryItem, 0, len(entries))
	for _, e := range entries {
		owner := models.Roulette{ID: e.RouletteID, IsPreset: e.IsPreset, IsBuiltIn: e.IsBuiltIn}
		items = append(items, models.HistoryItem{
			ID:                  e.ResultID,
			RouletteID:          e.RouletteID,
			RouletteName:        e.RouletteName,
			OptionText:          e.OptionText,
			Timestamp:           e.Timestamp,
			When:                strftime.Format(WhenFormat, e.Timestamp.In(loc)),
			Ago:                 humanize.RelTime(e.Timestamp, now, "ago", "from now"),
			Starred:             e.IsPreset && p.Classify(owner) == models.BucketUser,
			CurrentRouletteName: e.CurrentRouletteName,
			CurrentOptionText:   e.CurrentOptionText,
		})
	}
	return items
}
