package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mesto/mesto-go/internal/apperr"
	"github.com/mesto/mesto-go/internal/crypto"
	"github.com/mesto/mesto-go/internal/model"
	"github.com/mesto/mesto-go/internal/repository"
)

// Profile defaults applied when signup omits the optional fields.
const (
	defaultName   = "Jacques-Yves Cousteau"
	defaultAbout  = "Explorer"
	defaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// AuthService handles registration and login.
type AuthService struct {
	users     UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a new user account. The response never carries the email
// or any password material.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.SignupResponse, error) {
	if !validEmail(req.Email) || req.Password == "" {
		return model.SignupResponse{}, apperr.BadRequest("invalid data creating user")
	}
	if req.Name == "" {
		req.Name = defaultName
	}
	if req.About == "" {
		req.About = defaultAbout
	}
	if req.Avatar == "" {
		req.Avatar = defaultAvatar
	}
	if !validText(req.Name) || !validText(req.About) || !validURL(req.Avatar) {
		return model.SignupResponse{}, apperr.BadRequest("invalid data creating user")
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.SignupResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           model.NewID(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		About:        req.About,
		Avatar:       req.Avatar,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.SignupResponse{}, apperr.Conflict("email already registered")
		}
		return model.SignupResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return model.SignupResponse{
		ID:     user.ID,
		Name:   user.Name,
		About:  user.About,
		Avatar: user.Avatar,
	}, nil
}

// Signin verifies credentials and issues a token. Unknown email and wrong
// password produce the identical error so neither can be told apart.
func (s *AuthService) Signin(ctx context.Context, req model.SigninRequest) (model.TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return model.TokenResponse{}, apperr.Unauthorized("incorrect email or password")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, apperr.Unauthorized("incorrect email or password")
		}
		return model.TokenResponse{}, fmt.Errorf("looking up user: %w", err)
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("verifying password: %w", err)
	}
	if !match {
		return model.TokenResponse{}, apperr.Unauthorized("incorrect email or password")
	}

	token, err := crypto.IssueToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, fmt.Errorf("issuing token: %w", err)
	}

	return model.TokenResponse{Token: token}, nil
}
