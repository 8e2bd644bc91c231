package database

import (
	"context"
	"errors"

	"shareit/internal/models"

	"gorm.io/gorm"
)

func (db *DB) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	return db.gorm.WithContext(ctx).Create(request).Error
}

// GetRequest returns the item request or nil when no row matches.
func (db *DB) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	var request models.ItemRequest
	err := db.gorm.WithContext(ctx).First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (db *DB) RequestsByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := db.gorm.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created DESC").
		Find(&requests).Error
	return requests, err
}

// RequestsByOthers returns requests created by everyone except the given
// user, newest first.
func (db *DB) RequestsByOthers(ctx context.Context, requesterID int64, limit, offset int) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := db.gorm.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created DESC").
		Limit(limit).Offset(offset).
		Find(&requests).Error
	return requests, err
}
