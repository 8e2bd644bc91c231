package models

import "time"

type Comment struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	ItemID     int64     `json:"-" gorm:"index"`
	AuthorID   int64     `json:"-"`
	Author     *User     `json:"-" gorm:"foreignKey:AuthorID"`
	AuthorName string    `json:"authorName" gorm:"-"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

// NewComment is the creation payload for POST /items/{id}/comment.
type NewComment struct {
	Text string `json:"text"`
}
