package database

import (
	"context"
	"errors"

	"shareit/internal/models"

	"gorm.io/gorm"
)

func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	return db.gorm.WithContext(ctx).Create(user).Error
}

// GetUser returns the user or nil when no row matches.
func (db *DB) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := db.gorm.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := db.gorm.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) SaveUser(ctx context.Context, user *models.User) error {
	return db.gorm.WithContext(ctx).Save(user).Error
}

func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	return db.gorm.WithContext(ctx).Delete(&models.User{}, id).Error
}

func (db *DB) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := db.gorm.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}
