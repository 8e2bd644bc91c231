package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"shareit/internal/service"
)

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeErrorMessage(w http.ResponseWriter, statusCode int, category, message string) {
	writeJSON(w, statusCode, errorBody{Error: category, Description: message})
}

// writeError maps the service error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var (
		notFound   *service.NotFoundError
		validation *service.ValidationError
		badRequest *service.BadRequestError
		forbidden  *service.ForbiddenError
		conflict   *service.AlreadyExistsError
	)
	switch {
	case errors.As(err, &notFound):
		writeErrorMessage(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.As(err, &validation):
		writeErrorMessage(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.As(err, &badRequest):
		writeErrorMessage(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.As(err, &forbidden):
		writeErrorMessage(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.As(err, &conflict):
		writeErrorMessage(w, http.StatusConflict, "Conflict", err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, "Internal Server Error", "internal server error")
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeErrorMessage(w, http.StatusBadRequest, "Bad Request", message)
}
