package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// recordID reads the {id} path segment and ensures it carries the entity
// prefix, so callers may pass either the full record key or just its tail.
func recordID(r *http.Request, prefix string) string {
	id := chi.URLParam(r, "id")
	if !strings.HasPrefix(id, prefix) {
		id = prefix + id
	}
	return id
}
