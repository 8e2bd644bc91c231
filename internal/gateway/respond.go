package gateway

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func writeErrorMessage(w http.ResponseWriter, statusCode int, category, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorBody{Error: category, Description: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeErrorMessage(w, http.StatusBadRequest, "Bad Request", message)
}
