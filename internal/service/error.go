package service

import (
	"errors"

	"github.com/Behyna/sms-services/smsbroadcast/internal/constants"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
)

var (
	ErrDatabase                = errors.New("DATABASE_ERROR")
	ErrMissingPrivateReference = errors.New("MISSING_PRIVATE_REFERENCE")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

func providerErrorCode(err error) string {
	switch {
	case errors.Is(err, smsbroadcast.ErrEmptyBody):
		return constants.ErrCodeEmptyBody
	case errors.Is(err, smsbroadcast.ErrNoRecipients):
		return constants.ErrCodeNoRecipients
	case errors.Is(err, smsbroadcast.ErrAuthentication):
		return constants.ErrCodeProviderAuthentication
	case errors.Is(err, smsbroadcast.ErrRequestRejected):
		return constants.ErrCodeProviderRejected
	case errors.Is(err, smsbroadcast.ErrTimeout):
		return constants.ErrCodeProviderTimeout
	default:
		return constants.ErrCodeProviderUnavailable
	}
}

// isRequestError reports errors raised before anything reached the provider.
func isRequestError(err error) bool {
	return errors.Is(err, smsbroadcast.ErrEmptyBody) || errors.Is(err, smsbroadcast.ErrNoRecipients)
}
