// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
)

type RouletteHandler struct {
	st     *store.Store
	policy listing.Policy
}

func NewRouletteHandler(st *store.Store, policy listing.Policy) *RouletteHandler {
	return &RouletteHandler{st: st, policy: policy}
}

// ListRoulettes handles GET /roulettes
func (h *RouletteHandler) ListRoulettes(w http.ResponseWriter, r *http.Request) {
	roulettes, out := h.st.ListAllRoulettes(r.Context())
	if !out.OK() {
		writeOutcome(w, out, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RoulettesResponse{
		Roulettes: h.policy.List(roulettes),
	})
}

// CreateRoulette handles POST /roulettes
func (h *RouletteHandler) CreateRoulette(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRouletteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, options, ok := validateRoulette(w, req.Name, req.Options)
	if !ok {
		return
	}

	id, out := h.st.CreateRoulette(r.Context(), name, options, req.Favorite)
	if out.Kind != store.KindOK {
		writeOutcome(w, out, "")
		return
	}

	slog.Info("roulette created", "roulette_id", id, "options", len(options), "favorite", req.Favorite)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRouletteResponse{RouletteID: id})
}

// GetRoulette handles GET /roulettes/{id}
func (h *RouletteHandler) GetRoulette(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	roulette, out := h.st.GetRoulette(r.Context(), id)
	if out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, roulette)
}

// UpdateRoulette handles PUT /roulettes/{id}
func (h *RouletteHandler) UpdateRoulette(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdateRouletteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name, options, ok := validateRoulette(w, req.Name, req.Options)
	if !ok {
		return
	}

	if out := h.st.UpdateRouletteNameAndOptions(r.Context(), id, name, options); out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}

	slog.Info("roulette updated", "roulette_id", id, "options", len(options))

	roulette, out := h.st.GetRoulette(r.Context(), id)
	if out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, roulette)
}

// DeleteRoulette handles DELETE /roulettes/{id}
func (h *RouletteHandler) DeleteRoulette(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	roulette, out := h.st.GetRoulette(r.Context(), id)
	if out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}
	// Legacy threshold rows have no flag in the store
	if !h.policy.Removable(roulette.Roulette) {
		writeOutcome(w, store.Outcome{Kind: store.KindProtected}, "")
		return
	}

	if out := h.st.DeleteRoulette(r.Context(), id); out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}

	slog.Info("roulette deleted", "roulette_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Favorite handles POST /roulettes/{id}/favorite
func (h *RouletteHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

// Unfavorite handles DELETE /roulettes/{id}/favorite
func (h *RouletteHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

func (h *RouletteHandler) setFavorite(w http.ResponseWriter, r *http.Request, favorite bool) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	toggle := h.st.Unfavorite
	if favorite {
		toggle = h.st.Favorite
	}
	if out := toggle(r.Context(), id); out.Kind != store.KindOK {
		writeOutcome(w, out, "Roulette not found")
		return
	}

	slog.Info("favorite toggled", "roulette_id", id, "favorite", favorite)
	w.WriteHeader(http.StatusNoContent)
}

// ListPresets handles GET /presets
func (h *RouletteHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, out := h.st.ListPresets(r.Context())
	if !out.OK() {
		writeOutcome(w, out, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.policy.SplitPresets(presets, requestLanguage(r)))
}

// RecordResult handles POST /roulettes/{id}/results
func (h *RouletteHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	id, err := middleware.PathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.RecordResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	option := strings.TrimSpace(req.Option)
	if option == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option is required")
		return
	}

	resultID, out := h.st.RecordResult(r.Context(), id, option)
	if out.Kind != store.KindOK {
		writeOutcome(w, out, "Option not found on roulette")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RecordResultResponse{ResultID: resultID})
}

// validateRoulette trims the name and options and writes a 400 when they
// cannot be spun
func validateRoulette(w http.ResponseWriter, name string, options []string) (string, []string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return "", nil, false
	}

	options, ok := cleanOptions(options)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "options cannot be empty")
		return "", nil, false
	}
	if err := spin.CheckOptions(len(options)); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", nil, false
	}

	return name, options, true
}
