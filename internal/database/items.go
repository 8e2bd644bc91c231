package database

import (
	"context"
	"errors"
	"strings"

	"shareit/internal/models"

	"gorm.io/gorm"
)

func (db *DB) CreateItem(ctx context.Context, item *models.Item) error {
	return db.gorm.WithContext(ctx).Create(item).Error
}

// GetItem returns the item or nil when no row matches.
func (db *DB) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := db.gorm.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (db *DB) SaveItem(ctx context.Context, item *models.Item) error {
	return db.gorm.WithContext(ctx).Save(item).Error
}

func (db *DB) ItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	err := db.gorm.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, err
}

// SearchItems matches the phrase case-insensitively against name and
// description of available items.
func (db *DB) SearchItems(ctx context.Context, phrase string, limit, offset int) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(phrase) + "%"
	var items []models.Item
	err := db.gorm.WithContext(ctx).
		Where("available = ?", true).
		Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern).
		Order("id").
		Limit(limit).Offset(offset).
		Find(&items).Error
	return items, err
}

func (db *DB) ItemsByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := db.gorm.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id").
		Find(&items).Error
	return items, err
}
