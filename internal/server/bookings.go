package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"shareit/internal/models"
)

func (s *Server) createBooking(w http.ResponseWriter, r *http.Request) {
	bookerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var in models.NewBooking
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	booking, err := s.services.Bookings.Create(r.Context(), bookerID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (s *Server) getBooking(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	bookingID, err := pathID(r, "bookingID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	booking, err := s.services.Bookings.Get(r.Context(), bookingID, viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) approveBooking(w http.ResponseWriter, r *http.Request) {
	actingID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	bookingID, err := pathID(r, "bookingID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeBadRequest(w, "approved must be true or false")
		return
	}
	booking, err := s.services.Bookings.Approve(r.Context(), bookingID, approved, actingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (s *Server) listBookingsByBooker(w http.ResponseWriter, r *http.Request) {
	s.listBookings(w, r, s.services.Bookings.ListByBooker)
}

func (s *Server) listBookingsByOwner(w http.ResponseWriter, r *http.Request) {
	s.listBookings(w, r, s.services.Bookings.ListByOwner)
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, userID int64, state models.BookingState, from, size int) ([]models.Booking, error)) {

	id, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	state, err := models.ParseBookingState(r.URL.Query().Get("state"))
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	bookings, err := list(r.Context(), id, state, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}
