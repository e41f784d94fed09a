package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/thereayou/blabla/internal/apperr"
	"github.com/thereayou/blabla/internal/models"
	"github.com/thereayou/blabla/pkg/auth"
)

type AuthService struct {
	store  UserStore
	hasher *auth.PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(store UserStore, hasher *auth.PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{store: store, hasher: hasher, tokens: tokens}
}

// Signup регистрирует пользователя. Токен при регистрации не выдаётся.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*models.PublicUser, error) {
	if username == "" || email == "" || password == "" {
		return nil, apperr.Validation("All fields are required!")
	}

	exists, err := s.store.UserExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Username or Email already in use")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   hash,
		ProfilePicture: models.DefaultProfilePicture,
		Bio:            models.DefaultBio,
	}

	// проверка выше — только быстрый отказ; гонку двух регистраций
	// разрешает unique constraint внутри CreateUser
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// Login принимает email или username и выдаёт JWT на час
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.PublicUser, error) {
	if identifier == "" || password == "" {
		return "", nil, apperr.Validation("All fields are required!")
	}

	user, err := s.store.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperr.Unauthorized("User not found!")
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, apperr.Unauthorized("Invalid password!")
	}

	token, err := s.tokens.Generate(user.ID.String())
	if err != nil {
		return "", nil, err
	}

	return token, user.Public(), nil
}

// GetProfile отдаёт публичный профиль. Токен может пережить запись:
// валидная подпись при удалённом пользователе — это 404, а не 401.
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	profile, err := s.store.GetPublicProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperr.NotFound("User not found")
	}
	return profile, nil
}

// UpdateProfile меняет username и bio владельца; email не меняется никогда
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio string) error {
	if username == "" {
		return apperr.Validation("Username is required!")
	}

	taken, err := s.store.UsernameTakenByOther(ctx, username, userID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Conflict("Username already taken")
	}

	return s.store.UpdateProfile(ctx, userID, username, bio)
}

// UpdateProfilePicture записывает имя уже сохранённого файла
func (s *AuthService) UpdateProfilePicture(ctx context.Context, userID uuid.UUID, filename string) (string, error) {
	if filename == "" {
		return "", apperr.Validation("No file uploaded!")
	}

	if err := s.store.UpdateProfilePicture(ctx, userID, filename); err != nil {
		return "", err
	}

	return filename, nil
}
