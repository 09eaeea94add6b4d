package entity

import "time"

// DefaultAvatarPath is assigned to accounts created without an avatar.
const DefaultAvatarPath = "/resources/static/images/avatars/default-avatar.jpg"

type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	RegistrationDate time.Time `json:"registration_date"`
	AvatarURL        string    `json:"avatar_url"`
	Role             *Role     `json:"role,omitempty"`
}
