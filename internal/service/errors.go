package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("invalid parameters")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrUserNotTracked      = errors.New("user is not being tracked")
	ErrNotEnoughHistory    = errors.New("not enough history to compute growth")
	ErrPostNotFound        = errors.New("blog post not found")
	ErrCategoryNotFound    = errors.New("blog category not found")
	ErrVerificationMissing = errors.New("no pending verification for this email")
	ErrVerificationExpired = errors.New("verification code has expired")
	ErrCodeIncorrect       = errors.New("incorrect verification code")
	ErrBatchInProgress     = errors.New("another batch run is already in progress")
	ErrProviderUnavailable = errors.New("social data provider request failed")
	UnauthorizedError      = errors.New("unauthorized")
	UnExpectedError        = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrProfileNotFound:     NotFound,
	ErrUserNotTracked:      NotFound,
	ErrNotEnoughHistory:    NotFound,
	ErrPostNotFound:        NotFound,
	ErrCategoryNotFound:    NotFound,
	ErrVerificationMissing: NotFound,
	ErrVerificationExpired: Unauthorized,
	ErrCodeIncorrect:       Unauthorized,
	ErrBatchInProgress:     TooManyRequests,
	ErrProviderUnavailable: InternalServerError,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
