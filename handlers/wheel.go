// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
)

// WheelHandler drives the server-held wheel. A spin of a saved roulette
// records its result once it resolves; draft spins are not recorded.
type WheelHandler struct {
	st    *store.Store
	wheel *spin.Wheel

	mu         sync.Mutex
	rouletteID *int64 // roulette of the spin in flight
	last       *models.SpinOutcome
}

func NewWheelHandler(st *store.Store, wheel *spin.Wheel) *WheelHandler {
	return &WheelHandler{st: st, wheel: wheel}
}

// Spin handles POST /wheel/spin
func (h *WheelHandler) Spin(w http.ResponseWriter, r *http.Request) {
	var req models.SpinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var options []string
	if req.RouletteID != nil {
		roulette, out := h.st.GetRoulette(r.Context(), *req.RouletteID)
		if out.Kind != store.KindOK {
			writeOutcome(w, out, "Roulette not found")
			return
		}
		options = roulette.Options
	} else {
		draft, out := h.st.ListDraftOptions(r.Context())
		if !out.OK() {
			writeOutcome(w, out, "")
			return
		}
		options = draft
	}

	// Hold mu across Spin so a fast resolution cannot see the old roulette
	h.mu.Lock()
	plan, err := h.wheel.Spin(options, h.resolver(req.RouletteID))
	if err == nil {
		h.rouletteID = req.RouletteID
	}
	h.mu.Unlock()

	switch {
	case errors.Is(err, spin.ErrSpinInFlight):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, spin.ErrTooFewOptions):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		slog.Error("failed to start spin", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start spin")
		return
	}

	middleware.JSONResponse(w, http.StatusAccepted, spinResponse(plan, options, req.RouletteID))
}

// resolver records the outcome of a spin once the wheel stops
func (h *WheelHandler) resolver(rouletteID *int64) spin.ResolveFunc {
	return func(o spin.Outcome) {
		outcome := models.SpinOutcome{
			SpinID:        o.SpinID.String(),
			RouletteID:    rouletteID,
			Index:         o.Index,
			Option:        o.Option,
			FinalRotation: o.FinalRotation,
			ResolvedAt:    o.ResolvedAt,
		}

		if rouletteID != nil {
			// The request that started the spin is long gone
			_, out := h.st.RecordResult(context.Background(), *rouletteID, o.Option)
			outcome.Recorded = out.Kind == store.KindOK
			if !outcome.Recorded {
				slog.Warn("spin result not recorded", "roulette_id", *rouletteID, "option", o.Option, "outcome", out.Kind)
			}
		}

		h.mu.Lock()
		h.last = &outcome
		if h.rouletteID == rouletteID {
			h.rouletteID = nil
		}
		h.mu.Unlock()
	}
}

// Cancel handles DELETE /wheel/spin. The pending spin is dropped without
// moving the wheel or recording a result.
func (h *WheelHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled := h.wheel.Cancel()
	if cancelled {
		h.mu.Lock()
		h.rouletteID = nil
		h.mu.Unlock()
	}
	middleware.JSONResponse(w, http.StatusOK, models.CancelSpinResponse{Cancelled: cancelled})
}

// GetState handles GET /wheel
func (h *WheelHandler) GetState(w http.ResponseWriter, r *http.Request) {
	resp := models.WheelStateResponse{Rotation: h.wheel.Rotation()}

	h.mu.Lock()
	defer h.mu.Unlock()

	if plan, options, ok := h.wheel.Pending(); ok {
		pending := spinResponse(plan, options, h.rouletteID)
		resp.Spinning = true
		resp.Pending = &pending
	}
	if h.last != nil {
		last := *h.last
		resp.LastOutcome = &last
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

func spinResponse(plan spin.Plan, options []string, rouletteID *int64) models.SpinResponse {
	return models.SpinResponse{
		SpinID:         plan.ID.String(),
		RouletteID:     rouletteID,
		Options:        options,
		StartRotation:  plan.StartRotation,
		SpinAngle:      plan.SpinAngle,
		TargetRotation: plan.TargetRotation,
		DurationMs:     plan.Duration.Milliseconds(),
	}
}
