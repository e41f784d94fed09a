package models

import (
	"github.com/google/uuid"
	"time"
)

const (
	DefaultProfilePicture = "default.png"
	DefaultBio            = "This is my bio!"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	PasswordHash   string    `gorm:"not null"`
	ProfilePicture string    `gorm:"not null;default:'default.png'"`
	Bio            string    `gorm:"not null;default:'This is my bio!'"`
	CreatedAt      time.Time
}

// PublicUser — проекция User без PasswordHash, безопасная для клиента
type PublicUser struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profile_pic"`
	Bio            string    `json:"bio"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
	}
}
