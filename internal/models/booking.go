package models

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	BookerID  int64         `json:"-" gorm:"index"`
	Booker    *User         `json:"booker,omitempty" gorm:"foreignKey:BookerID"`
	ItemID    int64         `json:"-" gorm:"index"`
	Item      *Item         `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Start     time.Time     `json:"start" gorm:"column:start_date"`
	End       time.Time     `json:"end" gorm:"column:end_date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"-"`
	UpdatedAt time.Time     `json:"-"`
}

// BookingRef is the short form embedded in item views.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// NewBooking is the creation payload for POST /bookings.
type NewBooking struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// BookingState is the filter applied when listing bookings by booker or
// owner. It is distinct from BookingStatus: CURRENT, PAST and FUTURE are
// derived from the booking interval, not stored.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState maps a query parameter to a BookingState. An empty
// value defaults to ALL.
func ParseBookingState(raw string) (BookingState, error) {
	if strings.TrimSpace(raw) == "" {
		return StateAll, nil
	}
	state := BookingState(strings.ToUpper(strings.TrimSpace(raw)))
	switch state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	}
	return "", fmt.Errorf("Unknown state: %s", raw)
}
