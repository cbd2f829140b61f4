package utils

import "errors"

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrGeneratorFailure   = errors.New("text generator failure")
	ErrEmptyGeneration    = errors.New("text generator returned no content")

	ErrReviewNotFound      = errors.New("review not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRenderFailure      = errors.New("document rendering failed")
)
