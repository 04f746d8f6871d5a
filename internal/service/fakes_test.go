package service

import (
	"context"
	"slices"

	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore honoring the repository sentinel
// contract.
type fakeUserStore struct {
	users map[string]*model.User // keyed by id
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id, name, about string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Name, u.About = name, about
	return f.GetByID(ctx, id)
}

func (f *fakeUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Avatar = avatar
	return f.GetByID(ctx, id)
}

// fakeCardStore is an in-memory CardStore. calls counts persistence
// touches so tests can assert nothing was reached.
type fakeCardStore struct {
	cards map[string]*model.Card
	calls int
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[string]*model.Card)}
}

func (f *fakeCardStore) Create(_ context.Context, card *model.Card) error {
	f.calls++
	cp := *card
	f.cards[card.ID] = &cp
	return nil
}

func (f *fakeCardStore) GetByID(_ context.Context, id string) (*model.Card, error) {
	f.calls++
	c, ok := f.cards[id]
	if !ok {
		return nil, repository.ErrCardNotFound
	}
	cp := *c
	cp.Likes = slices.Clone(c.Likes)
	return &cp, nil
}

func (f *fakeCardStore) List(_ context.Context) ([]model.Card, error) {
	f.calls++
	var out []model.Card
	for _, c := range f.cards {
		cp := *c
		cp.Likes = slices.Clone(c.Likes)
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeCardStore) Delete(_ context.Context, id string) error {
	f.calls++
	if _, ok := f.cards[id]; !ok {
		return repository.ErrCardNotFound
	}
	delete(f.cards, id)
	return nil
}

func (f *fakeCardStore) AddLike(_ context.Context, cardID, userID string) error {
	f.calls++
	c, ok := f.cards[cardID]
	if !ok {
		return nil
	}
	if !slices.Contains(c.Likes, userID) {
		c.Likes = append(c.Likes, userID)
	}
	return nil
}

func (f *fakeCardStore) RemoveLike(_ context.Context, cardID, userID string) error {
	f.calls++
	c, ok := f.cards[cardID]
	if !ok {
		return nil
	}
	c.Likes = slices.DeleteFunc(slices.Clone(c.Likes), func(id string) bool { return id == userID })
	return nil
}
