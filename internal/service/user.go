package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/repository"
)

// UserService handles profile reads and updates.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	resp := make([]model.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, model.NewUserResponse(&users[i]))
	}
	return resp, nil
}

// GetByID returns one user. A non-identifier argument is rejected before
// any persistence access.
func (s *UserService) GetByID(ctx context.Context, id string) (model.UserResponse, error) {
	if !model.IsID(id) {
		return model.UserResponse{}, apperr.BadRequest("invalid user id")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, fmt.Errorf("getting user: %w", err)
	}
	return model.NewUserResponse(user), nil
}

// Me returns the authenticated caller's profile.
func (s *UserService) Me(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, fmt.Errorf("getting user: %w", err)
	}
	return model.NewUserResponse(user), nil
}

// UpdateProfile sets the caller's name and about fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (model.UserResponse, error) {
	if !validText(req.Name) || !validText(req.About) {
		return model.UserResponse{}, apperr.BadRequest("invalid data updating profile")
	}

	user, err := s.users.UpdateProfile(ctx, userID, req.Name, req.About)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, fmt.Errorf("updating profile: %w", err)
	}
	return model.NewUserResponse(user), nil
}

// UpdateAvatar sets the caller's avatar URL.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, req model.UpdateAvatarRequest) (model.UserResponse, error) {
	if !validURL(req.Avatar) {
		return model.UserResponse{}, apperr.BadRequest("invalid avatar url")
	}

	user, err := s.users.UpdateAvatar(ctx, userID, req.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, apperr.NotFound("user not found")
		}
		return model.UserResponse{}, fmt.Errorf("updating avatar: %w", err)
	}
	return model.NewUserResponse(user), nil
}
