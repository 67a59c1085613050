package swagger

import "github.com/lizlecrone/fitbit-api/internal/httputil"

// Operations extracts a map of all operations from a PathItem, keyed by
// lowercase HTTP method. Methods without an operation map to nil.
// Fitbit's document only uses get, put, post, and delete.
func Operations(item *PathItem) map[string]*Operation {
	return map[string]*Operation{
		httputil.MethodGet:    item.Get,
		httputil.MethodPut:    item.Put,
		httputil.MethodPost:   item.Post,
		httputil.MethodDelete: item.Delete,
	}
}
