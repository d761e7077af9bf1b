package domain

import "time"

type User struct {
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	AvatarURL    string    `json:"avatar_url"`
	PasswordHash string    `json:"-"` // argon2 encoded, never serialized
	CreatedAt    time.Time `json:"-"`
}
