// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

package api

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/tomtom215/comunidades/internal/logging"
)

// PanicEnvelope answers a panicked /api/v1 or static request with a JSON 500.
func PanicEnvelope(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Error(http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}

// Recoverer turns a handler panic into a logged, structured 500 written by
// onPanic (PanicEnvelope when nil). http.ErrAbortHandler is re-raised so the
// server aborts the connection as usual. Same contract as chi's Recoverer
// apart from the body.
func Recoverer(onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	if onPanic == nil {
		onPanic = PanicEnvelope
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logging.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", logging.SanitizeValue(r.URL.Path)).
					Msg("Recovered from handler panic")

				if r.Header.Get("Connection") != "Upgrade" {
					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
