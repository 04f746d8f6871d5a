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

// CardHandler handles protected card routes.
type CardHandler struct {
	cards *service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards *service.CardService) *CardHandler {
	return &CardHandler{cards: cards}
}

// HandleList handles GET /cards requests.
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cards.List(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, cards)
}

// HandleCreate handles POST /cards requests.
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	var req model.CreateCardRequest
	if err := decodeBody(w, r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}

	card, err := h.cards.Create(r.Context(), userID, req)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, card)
}

// HandleDelete handles DELETE /cards/{card_id} requests.
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	if err := h.cards.Delete(r.Context(), chi.URLParam(r, "card_id"), userID); err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.Message(w, http.StatusOK, "card deleted")
}

// HandleLike handles PUT /cards/{card_id}/likes requests.
func (h *CardHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	card, err := h.cards.Like(r.Context(), chi.URLParam(r, "card_id"), userID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}

// HandleUnlike handles DELETE /cards/{card_id}/likes requests.
func (h *CardHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		httpx.Error(w, r, apperr.Unauthorized("authorization required"))
		return
	}

	card, err := h.cards.Unlike(r.Context(), chi.URLParam(r, "card_id"), userID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, card)
}
