package service

import (
	"context"

	"github.com/mesto/mesto-go/internal/model"
)

// UserStore is the persistence collaborator for users. Implementations
// report failures through the closed sentinel set in the repository
// package; services translate those into taxonomy errors.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateProfile(ctx context.Context, id, name, about string) (*model.User, error)
	UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error)
}

// CardStore is the persistence collaborator for cards and likes.
type CardStore interface {
	Create(ctx context.Context, card *model.Card) error
	GetByID(ctx context.Context, id string) (*model.Card, error)
	List(ctx context.Context) ([]model.Card, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, cardID, userID string) error
	RemoveLike(ctx context.Context, cardID, userID string) error
}
