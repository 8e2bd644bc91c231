package service

import (
	"context"
	"time"

	"shareit/internal/database"
	"shareit/internal/metrics"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// BookingService owns the booking lifecycle rules: creation checks,
// the overlap test and the WAITING -> APPROVED/REJECTED transition.
type BookingService struct {
	db     *database.DB
	logger zerolog.Logger
}

func NewBookingService(db *database.DB, logger *zerolog.Logger) *BookingService {
	return &BookingService{db: db, logger: componentLogger(logger, "booking-service")}
}

// Create validates a proposed booking and stores it in WAITING status.
func (s *BookingService) Create(ctx context.Context, bookerID int64, in models.NewBooking) (*models.Booking, error) {
	if in.Start == nil || in.End == nil {
		return nil, &ValidationError{Msg: "start and end are required"}
	}
	now := time.Now()
	if !in.Start.Before(*in.End) {
		return nil, &ValidationError{Msg: "start must be before end"}
	}
	if !in.Start.After(now) || !in.End.After(now) {
		return nil, &ValidationError{Msg: "booking period must be in the future"}
	}

	booker, err := s.db.GetUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if booker == nil {
		return nil, &NotFoundError{What: "user", ID: bookerID}
	}

	item, err := s.db.GetItem(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{What: "item", ID: in.ItemID}
	}
	if item.OwnerID == bookerID {
		// owners cannot book their own items; the item is simply not
		// bookable for them
		return nil, &NotFoundError{What: "item", ID: in.ItemID}
	}
	if !item.Available {
		return nil, &BadRequestError{Msg: "item is not available for booking"}
	}

	if err := s.checkCrossedPeriods(ctx, in, now); err != nil {
		return nil, err
	}

	booking := models.Booking{
		BookerID: bookerID,
		ItemID:   in.ItemID,
		Start:    *in.Start,
		End:      *in.End,
		Status:   models.StatusWaiting,
	}
	if err := s.db.CreateBooking(ctx, &booking); err != nil {
		return nil, err
	}
	booking.Booker = booker
	booking.Item = item

	metrics.IncBookingCreated()
	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", in.ItemID).
		Int64("booker_id", bookerID).
		Msg("booking created")
	return &booking, nil
}

// checkCrossedPeriods rejects a proposal whose start or end falls strictly
// inside an active booking of the same item. An existing booking fully
// contained in the proposed interval slips through this test; that is the
// historical behavior and callers rely on the 400 it produces only for
// the partial cases.
func (s *BookingService) checkCrossedPeriods(ctx context.Context, in models.NewBooking, now time.Time) error {
	bookings, err := s.db.ActiveBookingsForItem(ctx, in.ItemID, now)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if in.Start.After(b.Start) && in.Start.Before(b.End) ||
			in.End.After(b.Start) && in.End.Before(b.End) {
			return &BadRequestError{Msg: "booking period crosses an existing booking"}
		}
	}
	return nil
}

// Approve applies the owner's decision to a waiting booking. The
// transition is one-way: a decided booking cannot be decided again.
func (s *BookingService) Approve(ctx context.Context, bookingID int64, approved bool, actingUserID int64) (*models.Booking, error) {
	booking, err := s.db.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{What: "booking", ID: bookingID}
	}
	if booking.BookerID == actingUserID {
		return nil, &ForbiddenError{Msg: "only the item owner may approve or reject a booking"}
	}
	if booking.Item == nil || booking.Item.OwnerID != actingUserID {
		// the booking is not visible to this user at all
		return nil, &NotFoundError{What: "booking", ID: bookingID}
	}
	if booking.Status != models.StatusWaiting {
		return nil, &ValidationError{Msg: "booking status cannot be changed"}
	}

	outcome := "rejected"
	booking.Status = models.StatusRejected
	if approved {
		outcome = "approved"
		booking.Status = models.StatusApproved
	}
	if err := s.db.SaveBooking(ctx, booking); err != nil {
		return nil, err
	}

	metrics.IncBookingDecision(outcome)
	s.logger.Info().
		Int64("booking_id", bookingID).
		Int64("owner_id", actingUserID).
		Str("outcome", outcome).
		Msg("booking decided")
	return booking, nil
}

// Get returns the booking only to its booker or to the item's owner.
func (s *BookingService) Get(ctx context.Context, bookingID, userID int64) (*models.Booking, error) {
	booking, err := s.db.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{What: "booking", ID: bookingID}
	}
	if booking.BookerID != userID && (booking.Item == nil || booking.Item.OwnerID != userID) {
		return nil, &NotFoundError{What: "booking", ID: bookingID}
	}
	return booking, nil
}

// ListByBooker returns the user's own bookings filtered by state.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	limit, offset := pageOffset(from, size)
	return s.listResult(s.db.BookingsByBooker(ctx, bookerID, state, time.Now(), limit, offset))
}

// ListByOwner returns the bookings of all items the user owns, filtered
// by state.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	limit, offset := pageOffset(from, size)
	return s.listResult(s.db.BookingsByOwner(ctx, ownerID, state, time.Now(), limit, offset))
}

func (s *BookingService) requireUser(ctx context.Context, userID int64) error {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{What: "user", ID: userID}
	}
	return nil
}

func (s *BookingService) listResult(bookings []models.Booking, err error) ([]models.Booking, error) {
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
