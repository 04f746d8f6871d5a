package handler

import (
	"net/http"

	"github.com/mesto/mesto-go/internal/httpx"
	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/service"
)

// AuthHandler handles the two public routes.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleSignup handles POST /signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeBody(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	resp, err := h.auth.Signup(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, resp)
}

// HandleSignin handles POST /signin requests.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	var req model.SigninRequest
	if err := decodeBody(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	resp, err := h.auth.Signin(r.Context(), req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, resp)
}
