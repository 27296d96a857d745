package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInsufficientPoints = errors.New("not enough points for payment")
	ErrPostExpired        = errors.New("post is expired, need to be renewed")
	ErrAlreadyCheckedIn   = errors.New("attendance has been checked for today")
)
