package service

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/require"
)

func TestBookingCreate(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	booking, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
		ItemID: item.ID, Start: &start, End: &end,
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusWaiting, booking.Status)
	require.Equal(t, booker.ID, booking.BookerID)
}

func TestBookingCreateValidation(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)
	unavailable := mustItem(t, svc, owner.ID, "broken saw", false)

	future := time.Now().Add(24 * time.Hour)
	later := future.Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name     string
		bookerID int64
		in       models.NewBooking
		wantErr  any
	}{
		{"missing start", booker.ID,
			models.NewBooking{ItemID: item.ID, End: &later},
			new(*ValidationError)},
		{"missing end", booker.ID,
			models.NewBooking{ItemID: item.ID, Start: &future},
			new(*ValidationError)},
		{"start equals end", booker.ID,
			models.NewBooking{ItemID: item.ID, Start: &future, End: &future},
			new(*ValidationError)},
		{"end before start", booker.ID,
			models.NewBooking{ItemID: item.ID, Start: &later, End: &future},
			new(*ValidationError)},
		{"start in the past", booker.ID,
			models.NewBooking{ItemID: item.ID, Start: &past, End: &later},
			new(*ValidationError)},
		{"unknown booker", 999,
			models.NewBooking{ItemID: item.ID, Start: &future, End: &later},
			new(*NotFoundError)},
		{"unknown item", booker.ID,
			models.NewBooking{ItemID: 999, Start: &future, End: &later},
			new(*NotFoundError)},
		{"owner books own item", owner.ID,
			models.NewBooking{ItemID: item.ID, Start: &future, End: &later},
			new(*NotFoundError)},
		{"unavailable item", booker.ID,
			models.NewBooking{ItemID: unavailable.ID, Start: &future, End: &later},
			new(*BadRequestError)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Bookings.Create(ctx, tc.bookerID, tc.in)
			require.ErrorAs(t, err, tc.wantErr)
		})
	}
}

func TestBookingCreateCrossedPeriods(t *testing.T) {
	svc, db := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	other := mustUser(t, svc, "other", "other@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	day := func(n float64) time.Time {
		return time.Now().Add(time.Duration(n * float64(24*time.Hour)))
	}
	mustBooking(t, db, item.ID, other.ID, day(2), day(3), models.StatusApproved)

	tests := []struct {
		name       string
		start, end time.Time
		wantCross  bool
	}{
		{"starts inside existing", day(2.5), day(4), true},
		{"ends inside existing", day(1), day(2.5), true},
		{"fully inside existing", day(2.25), day(2.75), true},
		{"before existing", day(0.5), day(1.5), false},
		{"after existing", day(4), day(5), false},
		// an existing booking fully inside the proposal slips through
		{"contains existing", day(1), day(4), false},
		{"exactly matches existing", day(2), day(3), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
				ItemID: item.ID, Start: &tc.start, End: &tc.end,
			})
			if tc.wantCross {
				var bad *BadRequestError
				require.ErrorAs(t, err, &bad)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBookingCreateIgnoresRejectedPeriods(t *testing.T) {
	svc, db := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	other := mustUser(t, svc, "other", "other@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	mustBooking(t, db, item.ID, other.ID, start, end, models.StatusRejected)

	s2 := start.Add(12 * time.Hour)
	e2 := s2.Add(12 * time.Hour)
	_, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
		ItemID: item.ID, Start: &s2, End: &e2,
	})
	require.NoError(t, err)
}

func TestBookingApprove(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	stranger := mustUser(t, svc, "stranger", "stranger@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	booking, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
		ItemID: item.ID, Start: &start, End: &end,
	})
	require.NoError(t, err)

	// the booker may not decide their own booking
	_, err = svc.Bookings.Approve(ctx, booking.ID, true, booker.ID)
	var forbidden *ForbiddenError
	require.ErrorAs(t, err, &forbidden)

	// a stranger does not see the booking at all
	_, err = svc.Bookings.Approve(ctx, booking.ID, true, stranger.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	decided, err := svc.Bookings.Approve(ctx, booking.ID, true, owner.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, decided.Status)

	// decisions are one-way
	_, err = svc.Bookings.Approve(ctx, booking.ID, false, owner.ID)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestBookingApproveReject(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	booking, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
		ItemID: item.ID, Start: &start, End: &end,
	})
	require.NoError(t, err)

	decided, err := svc.Bookings.Approve(ctx, booking.ID, false, owner.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, decided.Status)
}

func TestBookingGetVisibility(t *testing.T) {
	svc, _ := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	stranger := mustUser(t, svc, "stranger", "stranger@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	start := time.Now().Add(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	booking, err := svc.Bookings.Create(ctx, booker.ID, models.NewBooking{
		ItemID: item.ID, Start: &start, End: &end,
	})
	require.NoError(t, err)

	got, err := svc.Bookings.Get(ctx, booking.ID, booker.ID)
	require.NoError(t, err)
	require.Equal(t, booking.ID, got.ID)

	_, err = svc.Bookings.Get(ctx, booking.ID, owner.ID)
	require.NoError(t, err)

	_, err = svc.Bookings.Get(ctx, booking.ID, stranger.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = svc.Bookings.Get(ctx, 999, booker.ID)
	require.ErrorAs(t, err, &notFound)
}

func TestBookingLists(t *testing.T) {
	svc, db := setupServices(t)
	ctx := context.Background()

	owner := mustUser(t, svc, "owner", "owner@example.com")
	booker := mustUser(t, svc, "booker", "booker@example.com")
	item := mustItem(t, svc, owner.ID, "drill", true)

	now := time.Now()
	past := mustBooking(t, db, item.ID, booker.ID,
		now.Add(-72*time.Hour), now.Add(-48*time.Hour), models.StatusApproved)
	current := mustBooking(t, db, item.ID, booker.ID,
		now.Add(-time.Hour), now.Add(time.Hour), models.StatusApproved)
	future := mustBooking(t, db, item.ID, booker.ID,
		now.Add(24*time.Hour), now.Add(48*time.Hour), models.StatusWaiting)

	all, err := svc.Bookings.ListByBooker(ctx, booker.ID, models.StateAll, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest start first
	require.Equal(t, future.ID, all[0].ID)
	require.Equal(t, current.ID, all[1].ID)
	require.Equal(t, past.ID, all[2].ID)

	waiting, err := svc.Bookings.ListByOwner(ctx, owner.ID, models.StateWaiting, 0, 10)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	require.Equal(t, future.ID, waiting[0].ID)

	currentOnly, err := svc.Bookings.ListByBooker(ctx, booker.ID, models.StateCurrent, 0, 10)
	require.NoError(t, err)
	require.Len(t, currentOnly, 1)
	require.Equal(t, current.ID, currentOnly[0].ID)

	empty, err := svc.Bookings.ListByOwner(ctx, booker.ID, models.StateAll, 0, 10)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	_, err = svc.Bookings.ListByBooker(ctx, 999, models.StateAll, 0, 10)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
