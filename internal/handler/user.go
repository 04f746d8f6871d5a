package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/httpx"
	"github.com/mesto/mesto-go/internal/middleware"
	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/service"
)

// UserHandler handles protected user routes.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// HandleList handles GET /users requests.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

// HandleMe handles GET /users/me requests.
func (h *UserHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	user, err := h.users.Me(r.Context(), userID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// HandleGetByID handles GET /users/{user_id} requests.
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByID(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// HandleUpdateProfile handles PATCH /users/me requests.
func (h *UserHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	var req model.UpdateProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// HandleUpdateAvatar handles PATCH /users/me/avatar requests.
func (h *UserHandler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	var req model.UpdateAvatarRequest
	if err := decodeBody(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	user, err := h.users.UpdateAvatar(r.Context(), userID, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
