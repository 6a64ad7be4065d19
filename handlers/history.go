// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/models"
	"github.com/danielhkuo/quickly-spin/store"
)

type HistoryHandler struct {
	st     *store.Store
	policy listing.Policy
	limit  int
	now    func() time.Time
}

func NewHistoryHandler(st *store.Store, policy listing.Policy, defaultLimit int) *HistoryHandler {
	return &HistoryHandler{st: st, policy: policy, limit: defaultLimit, now: time.Now}
}

// GetHistory handles GET /history?limit=N&tz=Area/City
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	limit := h.limit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	loc := time.Local
	if tz := r.URL.Query().Get("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown time zone")
			return
		}
		loc = l
	}

	entries, out := h.st.ListHistory(r.Context(), limit)
	if !out.OK() {
		writeOutcome(w, out, "")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{
		Entries: h.policy.FormatHistory(entries, h.now(), loc),
	})
}
