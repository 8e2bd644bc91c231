package service

import "fmt"

// NotFoundError signals a missing User, Item, Booking or ItemRequest.
type NotFoundError struct {
	What string
	ID   int64
}

func (e *NotFoundError) Error() string {
	if e.What == "" {
		return "object not found"
	}
	return fmt.Sprintf("%s with id %d not found", e.What, e.ID)
}

// ValidationError signals missing or malformed input fields.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	if e.Msg == "" {
		return "invalid data"
	}
	return e.Msg
}

// BadRequestError signals a domain rule violation: unavailable item,
// overlapping booking, comment without a qualifying booking.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

// ForbiddenError signals a non-owner attempting an owner-only action.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string {
	if e.Msg == "" {
		return "no rights to perform this action"
	}
	return e.Msg
}

// AlreadyExistsError signals a uniqueness conflict, currently only a
// duplicate user email.
type AlreadyExistsError struct {
	Msg string
}

func (e *AlreadyExistsError) Error() string {
	if e.Msg == "" {
		return "object already exists"
	}
	return e.Msg
}
