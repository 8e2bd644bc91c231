package models

import "time"

type Item struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	OwnerID     int64     `json:"ownerId" gorm:"index"`
	Owner       *User     `json:"-" gorm:"foreignKey:OwnerID"`
	RequestID   *int64    `json:"requestId,omitempty" gorm:"index"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ItemPatch carries the fields a PATCH request supplied. Ownership may be
// reassigned by sending ownerId.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	OwnerID     *int64  `json:"ownerId"`
}

func (p ItemPatch) Apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Description != nil {
		i.Description = *p.Description
	}
	if p.Available != nil {
		i.Available = *p.Available
	}
	if p.OwnerID != nil {
		i.OwnerID = *p.OwnerID
	}
}

// NewItem is the creation payload for POST /items.
type NewItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *int64 `json:"requestId"`
}

// ItemView is an Item together with its comments and, for the owner,
// the last and next bookings.
type ItemView struct {
	Item
	LastBooking *BookingRef `json:"lastBooking,omitempty"`
	NextBooking *BookingRef `json:"nextBooking,omitempty"`
	Comments    []Comment   `json:"comments"`
}
