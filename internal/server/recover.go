package server

import (
	"net/http"

	"encmachine/internal/ctxlog"
)

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log := ctxlog.Get(r.Context())
				log.Error("recovered panic", "error", err)

				clear(w.Header())
				writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
