package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/model"
)

func seedUser(store *fakeUserStore, id, email string) {
	store.users[id] = &model.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$argon2id$...",
		Name:         "Marie",
		About:        "photographer",
		Avatar:       "https://example.com/a.png",
	}
}

func TestUserGetByID(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "marie@example.com")
	svc := NewUserService(store)

	user, err := svc.GetByID(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, user.ID)
	assert.Equal(t, "marie@example.com", user.Email)
}

func TestUserGetByIDInvalid(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.GetByID(context.Background(), "not-a-hex-id")
	appErr := apperr.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUserGetByIDMissing(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439099")
	appErr := apperr.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestUserList(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "a@example.com")
	seedUser(store, strangerID, "b@example.com")
	svc := NewUserService(store)

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUpdateProfile(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "marie@example.com")
	svc := NewUserService(store)

	user, err := svc.UpdateProfile(context.Background(), ownerID, model.UpdateProfileRequest{
		Name:  "Maria",
		About: "traveler",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.Name)
	assert.Equal(t, "traveler", user.About)
}

func TestUpdateProfileInvalid(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "marie@example.com")
	svc := NewUserService(store)

	_, err := svc.UpdateProfile(context.Background(), ownerID, model.UpdateProfileRequest{
		Name:  "x",
		About: "traveler",
	})
	appErr := apperr.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestUpdateAvatar(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "marie@example.com")
	svc := NewUserService(store)

	user, err := svc.UpdateAvatar(context.Background(), ownerID, model.UpdateAvatarRequest{
		Avatar: "https://example.com/new.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.png", user.Avatar)
}

func TestUpdateAvatarInvalidURL(t *testing.T) {
	store := newFakeUserStore()
	seedUser(store, ownerID, "marie@example.com")
	svc := NewUserService(store)

	_, err := svc.UpdateAvatar(context.Background(), ownerID, model.UpdateAvatarRequest{
		Avatar: "not a url",
	})
	appErr := apperr.From(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestValidators(t *testing.T) {
	assert.True(t, validEmail("a@b.co"))
	assert.False(t, validEmail("a@b"))
	assert.False(t, validEmail("not an email"))

	assert.True(t, validURL("https://example.com/pic.jpg"))
	assert.True(t, validURL("http://www.example.com"))
	assert.False(t, validURL("example.com"))
	assert.False(t, validURL("ftp://example.com"))

	assert.True(t, validText("ok"))
	assert.False(t, validText("x"))
}
