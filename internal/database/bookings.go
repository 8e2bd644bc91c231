package database

import (
	"context"
	"errors"
	"time"

	"shareit/internal/models"

	"gorm.io/gorm"
)

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return db.gorm.WithContext(ctx).Create(booking).Error
}

// GetBooking returns the booking with its item, the item's owner and the
// booker loaded, or nil when no row matches.
func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	err := db.gorm.WithContext(ctx).
		Preload("Item").
		Preload("Item.Owner").
		Preload("Booker").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (db *DB) SaveBooking(ctx context.Context, booking *models.Booking) error {
	return db.gorm.WithContext(ctx).Save(booking).Error
}

// ActiveBookingsForItem returns the non-rejected bookings of an item that
// have not ended yet. This is the set the overlap check runs against.
func (db *DB) ActiveBookingsForItem(ctx context.Context, itemID int64, now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.gorm.WithContext(ctx).
		Where("item_id = ? AND status <> ? AND end_date > ?", itemID, models.StatusRejected, now).
		Order("start_date").
		Find(&bookings).Error
	return bookings, err
}

// BookingsForItems returns all non-rejected bookings of the given items
// ordered by start ascending; used for last/next booking selection.
func (db *DB) BookingsForItems(ctx context.Context, itemIDs []int64) ([]models.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var bookings []models.Booking
	err := db.gorm.WithContext(ctx).
		Where("item_id IN ? AND status <> ?", itemIDs, models.StatusRejected).
		Order("start_date").
		Find(&bookings).Error
	return bookings, err
}

// HasFinishedBooking reports whether the user has a past non-rejected
// booking of the item. Gates comment creation.
func (db *DB) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var count int64
	err := db.gorm.WithContext(ctx).
		Model(&models.Booking{}).
		Where("item_id = ? AND booker_id = ? AND status <> ? AND end_date < ?",
			itemID, bookerID, models.StatusRejected, now).
		Count(&count).Error
	return count > 0, err
}

// BookingsByBooker returns the booker's bookings filtered by state,
// ordered by start descending.
func (db *DB) BookingsByBooker(ctx context.Context, bookerID int64, state models.BookingState,
	now time.Time, limit, offset int) ([]models.Booking, error) {

	q := db.gorm.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID)
	return findBookings(applyStateFilter(q, state, now), limit, offset)
}

// BookingsByOwner returns the bookings of all items the owner listed,
// filtered by state, ordered by start descending.
func (db *DB) BookingsByOwner(ctx context.Context, ownerID int64, state models.BookingState,
	now time.Time, limit, offset int) ([]models.Booking, error) {

	q := db.gorm.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return findBookings(applyStateFilter(q, state, now), limit, offset)
}

// BookingsBetween returns every booking whose period touches the given
// window, with items and bookers loaded, ordered by start ascending.
// Used by the xlsx export.
func (db *DB) BookingsBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.gorm.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("start_date <= ? AND end_date >= ?", to, from).
		Order("start_date").
		Find(&bookings).Error
	return bookings, err
}

func applyStateFilter(q *gorm.DB, state models.BookingState, now time.Time) *gorm.DB {
	switch state {
	case models.StateCurrent:
		return q.Where("start_date <= ? AND end_date >= ?", now, now)
	case models.StatePast:
		return q.Where("end_date < ?", now)
	case models.StateFuture:
		return q.Where("start_date > ?", now)
	case models.StateWaiting:
		return q.Where("status = ?", models.StatusWaiting)
	case models.StateRejected:
		return q.Where("status = ?", models.StatusRejected)
	default:
		return q
	}
}

func findBookings(q *gorm.DB, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := q.Order("start_date DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, err
}
