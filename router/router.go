// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/handlers"
	"github.com/danielhkuo/quickly-spin/listing"
	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/spin"
	"github.com/danielhkuo/quickly-spin/store"
)

func NewRouter(st *store.Store, wheel *spin.Wheel, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	policy := listing.Policy{LegacyBuiltInMaxID: cfg.LegacyBuiltInMaxID}

	// Initialize handlers
	rouletteHandler := handlers.NewRouletteHandler(st, policy)
	draftHandler := handlers.NewDraftHandler(st)
	historyHandler := handlers.NewHistoryHandler(st, policy, cfg.HistoryLimit)
	wheelHandler := handlers.NewWheelHandler(st, wheel)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.DB().PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Roulettes and favorites
	mux.HandleFunc("GET /roulettes", middleware.WithLogging(rouletteHandler.ListRoulettes))
	mux.HandleFunc("POST /roulettes", middleware.WithLogging(rouletteHandler.CreateRoulette))
	mux.HandleFunc("GET /roulettes/{id}", middleware.WithLogging(rouletteHandler.GetRoulette))
	mux.HandleFunc("PUT /roulettes/{id}", middleware.WithLogging(rouletteHandler.UpdateRoulette))
	mux.HandleFunc("DELETE /roulettes/{id}", middleware.WithLogging(rouletteHandler.DeleteRoulette))
	mux.HandleFunc("POST /roulettes/{id}/favorite", middleware.WithLogging(rouletteHandler.Favorite))
	mux.HandleFunc("DELETE /roulettes/{id}/favorite", middleware.WithLogging(rouletteHandler.Unfavorite))
	mux.HandleFunc("POST /roulettes/{id}/results", middleware.WithLogging(rouletteHandler.RecordResult))
	mux.HandleFunc("GET /presets", middleware.WithLogging(rouletteHandler.ListPresets))

	// History
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.GetHistory))

	// Draft session
	mux.HandleFunc("GET /draft", middleware.WithLogging(draftHandler.GetDraft))
	mux.HandleFunc("POST /draft/options", middleware.WithLogging(draftHandler.AddOption))
	mux.HandleFunc("DELETE /draft/options", middleware.WithLogging(draftHandler.RemoveOption))
	mux.HandleFunc("DELETE /draft", middleware.WithLogging(draftHandler.ClearDraft))
	mux.HandleFunc("POST /draft/save", middleware.WithLogging(draftHandler.SaveDraft))

	// Wheel
	mux.HandleFunc("POST /wheel/spin", middleware.WithLogging(wheelHandler.Spin))
	mux.HandleFunc("DELETE /wheel/spin", middleware.WithLogging(wheelHandler.Cancel))
	mux.HandleFunc("GET /wheel", middleware.WithLogging(wheelHandler.GetState))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-spin API v1"))
	})

	return mux
}
