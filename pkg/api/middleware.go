package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/airdata/ourairports-api/pkg/catalog"
	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// SnapshotHeader names the response header carrying the served snapshot id.
const SnapshotHeader = "X-Snapshot-Id"

type snapshotKey struct{}

// snapshotMiddleware pins one snapshot for the whole request so a concurrent
// refresh cannot mix data from two loads.
func snapshotMiddleware(source SnapshotSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			snap, err := source.Current()
			if err != nil {
				if errors.Is(err, catalog.ErrNotLoaded) {
					w.Header().Set("Retry-After", "30")
					sendError(w, r, "Datasets are still loading", http.StatusServiceUnavailable)
					return
				}
				sendError(w, r, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set(SnapshotHeader, snap.ID.String())
			next.ServeHTTP(w, r.WithContext(withSnapshot(r.Context(), snap)))
		})
	}
}

func withSnapshot(ctx context.Context, snap *catalog.Snapshot) context.Context {
	return context.WithValue(ctx, snapshotKey{}, snap)
}

func snapshotFrom(r *http.Request) *catalog.Snapshot {
	snap, _ := r.Context().Value(snapshotKey{}).(*catalog.Snapshot)
	return snap
}

// isPretty reports whether the request asked for indented output.
func isPretty(r *http.Request) bool {
	if r == nil {
		return false
	}
	pretty, _ := strconv.ParseBool(r.URL.Query().Get("pretty"))
	return pretty
}

// sendSuccess sends a successful JSON response
func sendSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	writeResponse(w, r, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	writeResponse(w, r, statusCode, APIResponse{
		Success: false,
		Error:   message,
	})
}

func writeResponse(w http.ResponseWriter, r *http.Request, statusCode int, response APIResponse) {
	encode := ourairports.ToJSON
	if isPretty(r) {
		encode = ourairports.ToJSONPretty
	}
	body, err := encode(response)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body = `{"success":false,"error":"failed to encode response"}`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body + "\n"))
}
