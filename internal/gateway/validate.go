package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shareit/internal/models"
)

// The gateway checks shape only. Anything touching stored state (does the
// user exist, is the item free) belongs to the business tier.

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// requireUserID checks the header's presence and numeric shape.
func requireUserID(r *http.Request) error {
	raw := r.Header.Get(userHeader)
	if raw == "" {
		return fmt.Errorf("%s header is required", userHeader)
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return fmt.Errorf("%s header must be a number", userHeader)
	}
	return nil
}

func validatePageParams(r *http.Request) error {
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil || from < 0 {
			return fmt.Errorf("from must be a non-negative number")
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return fmt.Errorf("size must be a positive number")
		}
	}
	return nil
}

func validateState(r *http.Request) error {
	_, err := models.ParseBookingState(r.URL.Query().Get("state"))
	return err
}

type newUserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func validateNewUser(body []byte) error {
	var p newUserPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if isBlank(p.Name) || isBlank(p.Email) {
		return fmt.Errorf("name and email are required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("email must be a valid address")
	}
	return nil
}

type userPatchPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func validateUserPatch(body []byte) error {
	var p userPatchPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if p.Name != nil && isBlank(*p.Name) {
		return fmt.Errorf("name must not be blank")
	}
	if p.Email != nil {
		if isBlank(*p.Email) {
			return fmt.Errorf("email must not be blank")
		}
		if !strings.Contains(*p.Email, "@") {
			return fmt.Errorf("email must be a valid address")
		}
	}
	return nil
}

type newItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
}

func validateNewItem(body []byte) error {
	var p newItemPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if isBlank(p.Name) {
		return fmt.Errorf("name is required")
	}
	if isBlank(p.Description) {
		return fmt.Errorf("description is required")
	}
	if p.Available == nil {
		return fmt.Errorf("available is required")
	}
	return nil
}

type itemPatchPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func validateItemPatch(body []byte) error {
	var p itemPatchPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if p.Name != nil && isBlank(*p.Name) {
		return fmt.Errorf("name must not be blank")
	}
	if p.Description != nil && isBlank(*p.Description) {
		return fmt.Errorf("description must not be blank")
	}
	return nil
}

type newBookingPayload struct {
	ItemID int64      `json:"itemId"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

// validateNewBooking rejects a malformed period before it ever reaches
// the business tier.
func validateNewBooking(body []byte) error {
	var p newBookingPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if p.ItemID == 0 {
		return fmt.Errorf("itemId is required")
	}
	if p.Start == nil || p.End == nil {
		return fmt.Errorf("start and end are required")
	}
	now := time.Now()
	if p.Start.Before(now) || p.End.Before(now) {
		return fmt.Errorf("booking period must be in the future")
	}
	if !p.Start.Before(*p.End) {
		return fmt.Errorf("start must be before end")
	}
	return nil
}

func validateApproveParam(r *http.Request) error {
	if _, err := strconv.ParseBool(r.URL.Query().Get("approved")); err != nil {
		return fmt.Errorf("approved must be true or false")
	}
	return nil
}

type textPayload struct {
	Text string `json:"text"`
}

func validateComment(body []byte) error {
	var p textPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if isBlank(p.Text) {
		return fmt.Errorf("comment text must not be blank")
	}
	return nil
}

type descriptionPayload struct {
	Description string `json:"description"`
}

func validateNewRequest(body []byte) error {
	var p descriptionPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	if isBlank(p.Description) {
		return fmt.Errorf("description is required")
	}
	return nil
}
