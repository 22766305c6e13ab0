package main

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/photogallery/pkg/page"
)

/*
newPageSessionMiddleware resolves the {id} path value to a live page
session and stores it on the request context. Unknown or closed
sessions get a 404 so the browser falls back to a fresh page load.
*/
func newPageSessionMiddleware(sessionStore *page.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				err     error
				session *page.Session
			)

			id := httphelpers.GetFromRequest[string](r, "id")

			if session, err = sessionStore.Get(id); err != nil {
				slog.Debug("page session not found", "id", id, "error", err)
				httphelpers.WriteText(w, http.StatusNotFound, "page session not found")
				return
			}

			ctx := page.WithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
