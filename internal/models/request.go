package models

import "time"

// ItemRequest is a user's public ask for an item they need. Read-only
// after creation.
type ItemRequest struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	RequesterID int64     `json:"-" gorm:"index"`
	Requester   *User     `json:"-" gorm:"foreignKey:RequesterID"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
}

// NewRequest is the creation payload for POST /requests.
type NewRequest struct {
	Description string `json:"description"`
}

// RequestView is an ItemRequest together with the items listed to
// fulfill it.
type RequestView struct {
	ItemRequest
	Items []Item `json:"items"`
}
