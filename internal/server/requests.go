package server

import (
	"encoding/json"
	"net/http"

	"shareit/internal/models"
)

func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	requesterID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var in models.NewRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	request, err := s.services.Requests.Create(r.Context(), requesterID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (s *Server) listOwnRequests(w http.ResponseWriter, r *http.Request) {
	requesterID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	views, err := s.services.Requests.Own(r.Context(), requesterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) listOtherRequests(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	views, err := s.services.Requests.FromOthers(r.Context(), viewerID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	view, err := s.services.Requests.Get(r.Context(), viewerID, requestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
