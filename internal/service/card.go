package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/repository"
)

// CardService handles card reads, creation, deletion and likes.
type CardService struct {
	cards CardStore
}

// NewCardService creates a new CardService.
func NewCardService(cards CardStore) *CardService {
	return &CardService{cards: cards}
}

// List returns all cards with their like sets.
func (s *CardService) List(ctx context.Context) ([]model.CardResponse, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	resp := make([]model.CardResponse, 0, len(cards))
	for i := range cards {
		resp = append(resp, model.NewCardResponse(&cards[i]))
	}
	return resp, nil
}

// Create makes a new card owned by the caller.
func (s *CardService) Create(ctx context.Context, ownerID string, req model.CreateCardRequest) (model.CardResponse, error) {
	if !validText(req.Name) || !validURL(req.Link) {
		return model.CardResponse{}, apperr.BadRequest("invalid data creating card")
	}

	card := &model.Card{
		ID:      model.NewID(),
		OwnerID: ownerID,
		Name:    req.Name,
		Link:    req.Link,
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return model.CardResponse{}, fmt.Errorf("creating card: %w", err)
	}
	return model.NewCardResponse(card), nil
}

// Delete removes a card. The card is looked up first — a missing card is
// NotFound before any ownership comparison — and only the owner may delete
// it.
func (s *CardService) Delete(ctx context.Context, cardID, userID string) error {
	if !model.IsID(cardID) {
		return apperr.BadRequest("invalid card id")
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return apperr.NotFound("card not found")
		}
		return fmt.Errorf("getting card: %w", err)
	}

	if card.OwnerID != userID {
		return apperr.Forbidden("you can only delete your own cards")
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return apperr.NotFound("card not found")
		}
		return fmt.Errorf("deleting card: %w", err)
	}
	return nil
}

// Like adds the caller to the card's like set. Any authenticated user may
// like any card; repeating a like changes nothing.
func (s *CardService) Like(ctx context.Context, cardID, userID string) (model.CardResponse, error) {
	return s.updateLike(ctx, cardID, userID, s.cards.AddLike)
}

// Unlike removes the caller from the card's like set.
func (s *CardService) Unlike(ctx context.Context, cardID, userID string) (model.CardResponse, error) {
	return s.updateLike(ctx, cardID, userID, s.cards.RemoveLike)
}

func (s *CardService) updateLike(ctx context.Context, cardID, userID string, op func(context.Context, string, string) error) (model.CardResponse, error) {
	if !model.IsID(cardID) {
		return model.CardResponse{}, apperr.BadRequest("invalid card id")
	}

	if _, err := s.cards.GetByID(ctx, cardID); err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return model.CardResponse{}, apperr.NotFound("card not found")
		}
		return model.CardResponse{}, fmt.Errorf("getting card: %w", err)
	}

	if err := op(ctx, cardID, userID); err != nil {
		return model.CardResponse{}, fmt.Errorf("updating likes: %w", err)
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return model.CardResponse{}, apperr.NotFound("card not found")
		}
		return model.CardResponse{}, fmt.Errorf("getting card: %w", err)
	}
	return model.NewCardResponse(card), nil
}
