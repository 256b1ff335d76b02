package validators

import (
	"net/http"
	"strings"
)

// QueryString returns the trimmed value of a query parameter, or the empty
// string when absent.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
