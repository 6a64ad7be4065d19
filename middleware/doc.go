// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug (method, path, remote) and completion at info,
or error for 5xx (status, duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Reflects the caller's Origin and answers preflight requests with 204.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody rejects unknown fields and bodies over MaxBodyBytes. An empty
body is not an error, so optional payloads (POST /wheel/spin) may be left
out:

	var req models.CreateRouletteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

PathID parses numeric path values:

	id, err := middleware.PathID(r, "id")
*/
package middleware
