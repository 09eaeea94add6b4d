package usecase

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrVideoExists        = errors.New("video with this url already exists")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
