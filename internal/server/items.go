package server

import (
	"encoding/json"
	"net/http"

	"shareit/internal/models"
)

func (s *Server) listItems(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	from, size, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	views, err := s.services.Items.ListByOwner(r.Context(), ownerID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	viewerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	view, err := s.services.Items.Get(r.Context(), itemID, viewerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// searchItems needs no user header: search is anonymous.
func (s *Server) searchItems(w http.ResponseWriter, r *http.Request) {
	from, size, err := pageParams(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	items, err := s.services.Items.Search(r.Context(), r.URL.Query().Get("text"), from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) createItem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var in models.NewItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	item, err := s.services.Items.Create(r.Context(), ownerID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) updateItem(w http.ResponseWriter, r *http.Request) {
	actingID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	item, err := s.services.Items.Update(r.Context(), itemID, actingID, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) addComment(w http.ResponseWriter, r *http.Request) {
	authorID, err := userID(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	var in models.NewComment
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	comment, err := s.services.Items.AddComment(r.Context(), itemID, authorID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comment)
}
