package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thereayou/blabla/internal/models"
)

// UserStore — контракт хранилища учётных записей. Реализуется
// internal/database; сервис не знает, что за ним Postgres.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	UserExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UsernameTakenByOther(ctx context.Context, username string, excludeID uuid.UUID) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, username, bio string) error
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, filename string) error
	GetPublicProfile(ctx context.Context, id uuid.UUID) (*models.PublicUser, error)
}

type TokenIssuer interface {
	Generate(userID string) (string, error)
}
