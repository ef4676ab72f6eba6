package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/campusconnect/portal-bff/internal/domain"
	"github.com/campusconnect/portal-bff/internal/upstream"
	"github.com/campusconnect/portal-bff/middleware"
)

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func sendError(w http.ResponseWriter, r *http.Request, code string, message string, status int) {
	resp := domain.APIError{}
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.RequestID = middleware.GetRequestID(r.Context())

	sendJSON(w, status, resp)
}

// handleFetchError maps a resource-client failure onto the BFF's error
// envelope. Only detail/mutation paths use this; list pages degrade to
// fallback data instead of failing.
func handleFetchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, upstream.ErrNotFound):
		sendError(w, r, "resource_not_found", "not found", http.StatusNotFound)
	case errors.Is(err, upstream.ErrNoDownload):
		sendError(w, r, "download_unavailable", "no downloadable file for this document", http.StatusNotFound)
	case errors.Is(err, upstream.ErrTimeout):
		sendError(w, r, "upstream_timeout", "campus backend timeout", http.StatusGatewayTimeout)
	default:
		var se *upstream.StatusError
		if errors.As(err, &se) {
			sendError(w, r, se.Code, se.Message, se.StatusCode)
			return
		}
		sendError(w, r, "upstream_unavailable", "campus backend unreachable", http.StatusBadGateway)
	}
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
