package logic

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ErrConfiguration ErrorKind = iota + 1
	ErrInvalidUrl
	ErrValidation
	ErrRegistration
	ErrTokenExchange
	ErrUpload
	ErrDeletion
	ErrRequest
)

var errorKindNames = map[ErrorKind]string{
	ErrConfiguration: "configuration",
	ErrInvalidUrl:    "invalid_url",
	ErrValidation:    "validation",
	ErrRegistration:  "registration",
	ErrTokenExchange: "token_exchange",
	ErrUpload:        "upload",
	ErrDeletion:      "deletion",
	ErrRequest:       "request",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

const (
	msgNoInstance          = "No instance URL set"
	msgInvalidUrl          = "Invalid URL format"
	msgHttpsOnly           = "Instance URL must use https on the default port"
	msgStatusRequired      = "Status content is required"
	msgRegistrationFailed  = "Failed to register application"
	msgInvalidRegistration = "Invalid response from server"
	msgTokenFailed         = "Failed to get access token"
	msgScheduleFailed      = "Failed to schedule toot"
	msgUploadFailed        = "Failed to upload media"
	msgMediaUpdateFailed   = "Failed to update media"
	msgFetchFailed         = "Failed to fetch scheduled toots"
	msgDeleteFailed        = "Failed to delete scheduled toot"
	msgVerifyFailed        = "Failed to verify credentials"
	msgTagsFailed          = "Failed to fetch followed tags"
	msgBlockedInstance     = "Logging in with this instance is not allowed"
)

// ApiError is the error type of every gateway operation.
// Message is fit for showing to the user; Status is the HTTP status, or 0 if no response arrived.
type ApiError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Err     error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func newApiError(kind ErrorKind, msg string) *ApiError {
	return &ApiError{Kind: kind, Message: msg}
}

// IsKind reports whether err is, or wraps, an ApiError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}

// UserMessage returns the user-facing text for err, or fallback when err is not an ApiError.
func UserMessage(err error, fallback string) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
