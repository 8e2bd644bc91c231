package database

import (
	"context"

	"shareit/internal/models"
)

func (db *DB) CreateComment(ctx context.Context, comment *models.Comment) error {
	return db.gorm.WithContext(ctx).Create(comment).Error
}

// CommentsForItems returns the comments of the given items ordered by
// creation time, with AuthorName resolved.
func (db *DB) CommentsForItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var comments []models.Comment
	err := db.gorm.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	for i := range comments {
		if comments[i].Author != nil {
			comments[i].AuthorName = comments[i].Author.Name
		}
	}
	return comments, nil
}
