package models

import "time"

// TimestampLayout is the ISO-8601 form stored in result.timestamp.
// Fixed width so lexical order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Listing buckets
const (
	BucketBuiltIn = "built_in"
	BucketUser    = "user"
)

// Domain types

type Roulette struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsPreset  bool   `json:"is_preset"`
	IsBuiltIn bool   `json:"is_built_in"`
}

type Option struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	RouletteID int64  `json:"roulette_id"`
}

type RouletteWithOptions struct {
	Roulette Roulette `json:"roulette"`
	Options  []string `json:"options"`
}

// HistoryEntry is one Result joined with its roulette and option.
// RouletteName and OptionText are resolved when the spin is recorded;
// the Current* fields hold live values and are nil once the row is gone.
type HistoryEntry struct {
	ResultID            int64     `json:"result_id"`
	Timestamp           time.Time `json:"timestamp"`
	RouletteID          int64     `json:"roulette_id"`
	OptionID            int64     `json:"option_id"`
	RouletteName        string    `json:"roulette_name"`
	OptionText          string    `json:"option_text"`
	CurrentRouletteName *string   `json:"current_roulette_name,omitempty"`
	CurrentOptionText   *string   `json:"current_option_text,omitempty"`
	IsPreset            bool      `json:"is_preset"`
	IsBuiltIn           bool      `json:"is_built_in"`
}

// Request types

type CreateRouletteRequest struct {
	Name     string   `json:"name"`
	Options  []string `json:"options"`
	Favorite bool     `json:"favorite"`
}

type UpdateRouletteRequest struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type RecordResultRequest struct {
	Option string `json:"option"`
}

type DraftOptionRequest struct {
	Text string `json:"text"`
}

type SaveDraftRequest struct {
	Name     string `json:"name"`
	Favorite bool   `json:"favorite"`
}

// Spin a saved roulette when RouletteID is set, the draft otherwise
type SpinRequest struct {
	RouletteID *int64 `json:"roulette_id,omitempty"`
}

// Response types

type CreateRouletteResponse struct {
	RouletteID int64 `json:"roulette_id"`
}

type RecordResultResponse struct {
	ResultID int64 `json:"result_id"`
}

type ListedRoulette struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IsPreset  bool   `json:"is_preset"`
	Bucket    string `json:"bucket"`
	Removable bool   `json:"removable"`
}

type RoulettesResponse struct {
	Roulettes []ListedRoulette `json:"roulettes"`
}

type PresetsResponse struct {
	BuiltIn []ListedRoulette `json:"built_in"`
	User    []ListedRoulette `json:"user"`
}

type DraftResponse struct {
	Options []string `json:"options"`
}

// HistoryItem is a HistoryEntry prepared for display
type HistoryItem struct {
	ID                  int64     `json:"id"`
	RouletteID          int64     `json:"roulette_id"`
	RouletteName        string    `json:"roulette_name"`
	OptionText          string    `json:"option_text"`
	Timestamp           time.Time `json:"timestamp"`
	When                string    `json:"when"`
	Ago                 string    `json:"ago"`
	Starred             bool      `json:"starred"`
	CurrentRouletteName *string   `json:"current_roulette_name,omitempty"`
	CurrentOptionText   *string   `json:"current_option_text,omitempty"`
}

type HistoryResponse struct {
	Entries []HistoryItem `json:"entries"`
}

type SpinResponse struct {
	SpinID         string   `json:"spin_id"`
	RouletteID     *int64   `json:"roulette_id,omitempty"`
	Options        []string `json:"options"`
	StartRotation  float64  `json:"start_rotation"`
	SpinAngle      float64  `json:"spin_angle"`
	TargetRotation float64  `json:"target_rotation"`
	DurationMs     int64    `json:"duration_ms"`
}

type SpinOutcome struct {
	SpinID        string    `json:"spin_id"`
	RouletteID    *int64    `json:"roulette_id,omitempty"`
	Index         int       `json:"index"`
	Option        string    `json:"option"`
	FinalRotation float64   `json:"final_rotation"`
	ResolvedAt    time.Time `json:"resolved_at"`
	Recorded      bool      `json:"recorded"`
}

type CancelSpinResponse struct {
	Cancelled bool `json:"cancelled"`
}

type WheelStateResponse struct {
	Rotation    float64       `json:"rotation"`
	Spinning    bool          `json:"spinning"`
	Pending     *SpinResponse `json:"pending,omitempty"`
	LastOutcome *SpinOutcome  `json:"last_outcome,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
