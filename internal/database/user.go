package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/thereayou/blabla/internal/apperr"
	"github.com/thereayou/blabla/internal/models"
	"gorm.io/gorm"
)

// CreateUser сохраняет нового пользователя. Unique index в базе — финальная
// защита от гонки двух одновременных регистраций: предварительная проверка
// в сервисе лишь быстрый отказ.
func (d *Database) CreateUser(ctx context.Context, user *models.User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Username or Email already in use")
		}
		return err
	}
	return nil
}

// FindUserByIdentifier ищет по email или username; отсутствие — не ошибка
func (d *Database) FindUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	user := models.User{}
	err := d.db.WithContext(ctx).
		Where("email = ? OR username = ?", identifier, identifier).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UserExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

// UsernameTakenByOther проверяет, занят ли username кем-то, кроме excludeID,
// чтобы пользователь мог сохранить собственный username без конфликта
func (d *Database) UsernameTakenByOther(ctx context.Context, username string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (d *Database) UpdateProfile(ctx context.Context, id uuid.UUID, username, bio string) error {
	res := d.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"username": username, "bio": bio})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("Username already taken")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

func (d *Database) UpdateProfilePicture(ctx context.Context, id uuid.UUID, filename string) error {
	res := d.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("profile_picture", filename)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("User not found")
	}
	return nil
}

// GetPublicProfile читает запись без password_hash
func (d *Database) GetPublicProfile(ctx context.Context, id uuid.UUID) (*models.PublicUser, error) {
	user := models.User{}
	err := d.db.WithContext(ctx).
		Select("id", "username", "email", "profile_picture", "bio").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
