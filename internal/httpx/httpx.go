// Package httpx is the single place responses leave the process. Handlers
// and middleware hand it a value or an error; it never re-classifies.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mesto/mesto-go/internal/apperr"
)

const genericInternalMessage = "internal server error"

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error renders a classified error as its status and message. Anything
// unclassified, and any internal-kind error, becomes a 500 with a generic
// body; the real cause goes to the log only.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.From(err)
	if appErr == nil {
		slog.Error("unclassified error reached dispatcher",
			"method", r.Method, "path", r.URL.Path, "error", err)
		Message(w, http.StatusInternalServerError, genericInternalMessage)
		return
	}

	if appErr.Status == http.StatusInternalServerError {
		slog.Error("internal error",
			"method", r.Method, "path", r.URL.Path, "error", appErr.Message)
		Message(w, http.StatusInternalServerError, genericInternalMessage)
		return
	}

	Message(w, appErr.Status, appErr.Message)
}

// NotFound serves routes no handler matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Error(w, r, apperr.NotFound("resource not found"))
}
