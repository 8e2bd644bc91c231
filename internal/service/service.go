package service

import (
	"strings"

	"shareit/internal/database"

	"github.com/rs/zerolog"
)

// Services bundles the business services sharing one store.
type Services struct {
	Users    *UserService
	Items    *ItemService
	Bookings *BookingService
	Requests *RequestService
}

func New(db *database.DB, logger *zerolog.Logger) *Services {
	return &Services{
		Users:    NewUserService(db, logger),
		Items:    NewItemService(db, logger),
		Bookings: NewBookingService(db, logger),
		Requests: NewRequestService(db, logger),
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

const defaultPageSize = 10

// pageOffset reproduces the page arithmetic of the HTTP contract: from is
// an element index, but the page fetched is page from/size, so the offset
// snaps down to a page boundary.
func pageOffset(from, size int) (limit, offset int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if from < 0 {
		from = 0
	}
	return size, (from / size) * size
}

func componentLogger(logger *zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
