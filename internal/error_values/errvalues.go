package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token was revoked")
	ErrNotLoggedIn  = errors.New("user is not logged in")
)

var (
	ErrAffirmationNotFound = errors.New("affirmation doesn't exist")
	ErrInvalidCategory     = errors.New("unknown affirmation category")
	ErrWrongOwner          = errors.New("resource belongs to another user")
)

var (
	ErrTaskNotFound    = errors.New("daily task doesn't exist")
	ErrOrderOutOfRange = errors.New("task order is out of range")
	ErrInvalidMethod   = errors.New("unknown practice method")
)

var (
	ErrInvalidPeriod    = errors.New("unknown practice period")
	ErrPeriodCompleted  = errors.New("all repetitions of the period are done")
	ErrRepetitionExists = errors.New("repetition already recorded")
)
