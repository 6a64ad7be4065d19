// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
)

// DraftHandler serves the option list of a roulette being composed
type DraftHandler struct {
	st *store.Store
}

func NewDraftHandler(st *store.Store) *DraftHandler {
	return &DraftHandler{st: st}
}

// GetDraft handles GET /draft
func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	h.writeDraft(w, r, http.StatusOK)
}

// AddOption handles POST /draft/options
func (h *DraftHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.DraftOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	if out := h.st.AppendDraftOption(r.Context(), text); out.Kind != store.KindOK {
		writeOutcome(w, out, "")
		return
	}

	h.writeDraft(w, r, http.StatusCreated)
}

// RemoveOption handles DELETE /draft/options?text=...
func (h *DraftHandler) RemoveOption(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("text"))
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	if out := h.st.RemoveDraftOption(r.Context(), text); out.Kind != store.KindOK {
		writeOutcome(w, out, "Option not in draft")
		return
	}

	h.writeDraft(w, r, http.StatusOK)
}

// ClearDraft handles DELETE /draft
func (h *DraftHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	if out := h.st.ClearDraft(r.Context()); out.Kind != store.KindOK {
		writeOutcome(w, out, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveDraft handles POST /draft/save
func (h *DraftHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req models.SaveDraftRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	options, out := h.st.ListDraftOptions(r.Context())
	if !out.OK() {
		writeOutcome(w, out, "")
		return
	}
	if err := spin.CheckOptions(len(options)); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, out := h.st.SaveDraft(r.Context(), name, req.Favorite)
	switch out.Kind {
	case store.KindOK:
	case store.KindEmpty:
		middleware.ErrorResponse(w, http.StatusBadRequest, "draft is empty")
		return
	default:
		writeOutcome(w, out, "")
		return
	}

	slog.Info("draft saved", "roulette_id", id, "options", len(options), "favorite", req.Favorite)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateRouletteResponse{RouletteID: id})
}

func (h *DraftHandler) writeDraft(w http.ResponseWriter, r *http.Request, status int) {
	options, out := h.st.ListDraftOptions(r.Context())
	if !out.OK() {
		writeOutcome(w, out, "")
		return
	}
	middleware.JSONResponse(w, status, models.DraftResponse{Options: options})
}
