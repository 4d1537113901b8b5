package smsbroadcast

import (
	"errors"
	"net/http"
)

const (
	ErrCodeAuthentication  = "AUTHENTICATION_FAILED"
	ErrCodeRequestRejected = "REQUEST_REJECTED"
	ErrCodeServerError     = "SERVER_ERROR"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeNetworkError    = "NETWORK_ERROR"
	ErrCodeNoRecipients    = "NO_RECIPIENTS"
	ErrCodeEmptyBody       = "EMPTY_BODY"
	ErrCodeInvalidResponse = "INVALID_RESPONSE"
)

var (
	ErrAuthentication  = errors.New(ErrCodeAuthentication)
	ErrRequestRejected = errors.New(ErrCodeRequestRejected)
	ErrServerError     = errors.New(ErrCodeServerError)
	ErrTimeout         = errors.New(ErrCodeTimeout)
	ErrNetwork         = errors.New(ErrCodeNetworkError)
	ErrNoRecipients    = errors.New(ErrCodeNoRecipients)
	ErrEmptyBody       = errors.New(ErrCodeEmptyBody)
	ErrInvalidResponse = errors.New(ErrCodeInvalidResponse)
)

var statusErrorMap = map[int]error{
	http.StatusUnauthorized: ErrAuthentication,
	http.StatusForbidden:    ErrAuthentication,
	http.StatusBadRequest:   ErrRequestRejected,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}

// ProviderError carries the reason text of an "ERROR:" line.
type ProviderError struct {
	Err    error
	Reason string
}

func (e *ProviderError) Error() string {
	return e.Err.Error() + ": " + e.Reason
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
