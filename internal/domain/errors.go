package domain

import "errors"

var (
	ErrFlightNotFound = errors.New("flight not found")

	ErrBookingNotFound = errors.New("booking not found")

	ErrUserNotFound = errors.New("user not found")

	ErrForbidden = errors.New("access denied")

	ErrInsufficientSeats = errors.New("not enough seats available")

	ErrAlreadyCancelled = errors.New("booking already cancelled")

	ErrInvalidFareClass = errors.New("unknown fare class")

	ErrBookingExists = errors.New("booking id already exists")

	ErrEmailExists = errors.New("user already exists with this email")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
