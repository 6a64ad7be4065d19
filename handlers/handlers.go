// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-spin/middleware"
	"github.com/danielhkuo/quickly-spin/store"
	"golang.org/x/text/language"
)

// writeOutcome maps a non-OK store outcome to an error response.
// notFound is the message used for KindMiss.
func writeOutcome(w http.ResponseWriter, out store.Outcome, notFound string) {
	switch out.Kind {
	case store.KindMiss:
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
	case store.KindProtected:
		middleware.ErrorResponse(w, http.StatusForbidden, "built-in roulettes cannot be deleted")
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// cleanOptions trims every option and reports false if any is empty
func cleanOptions(options []string) ([]string, bool) {
	out := make([]string, 0, len(options))
	for _, o := range options {
		o = strings.TrimSpace(o)
		if o == "" {
			return nil, false
		}
		out = append(out, o)
	}
	return out, true
}

// requestLanguage picks the first Accept-Language tag, or Und
func requestLanguage(r *http.Request) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.Und
	}
	return tags[0]
}
