// Package handler wires HTTP requests to services. Handlers only decode,
// delegate and respond; every failure is already classified by the time it
// reaches the response dispatcher.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mesto/mesto-go/internal/apperr"
)

// decodeBody decodes a JSON request body into v with a 1MB cap. Any decode
// failure is a BadRequest.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	return nil
}
