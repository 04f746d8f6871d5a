package model

import "time"

// User represents a user in the database.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
}

// SignupRequest represents a registration request. Name, about and avatar
// are optional and defaulted server-side.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	About    string `json:"about"`
	Avatar   string `json:"avatar"`
}

// SigninRequest represents a login request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed token returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupResponse is the profile slice returned on registration. It never
// carries the email or any password material.
type SignupResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

// UserResponse represents user data safe for API responses.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// UpdateProfileRequest updates the caller's name and about fields.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	About string `json:"about"`
}

// UpdateAvatarRequest updates the caller's avatar URL.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// NewUserResponse maps a stored user to its API shape.
func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}
