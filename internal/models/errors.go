package models

import "errors"

// Domain errors shared by the store implementations and the service layer.
// Handlers map these onto the HTTP statuses and detail strings the frontend
// expects.
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrAlreadySignedUp     = errors.New("student already signed up for this activity")
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)
