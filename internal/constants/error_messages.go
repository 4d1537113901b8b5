package constants

import "net/http"

const (
	ErrCodeInvalidRequestBody     = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed       = "VALIDATION_FAILED"
	ErrCodeNoRecipients           = "NO_RECIPIENTS"
	ErrCodeEmptyBody              = "EMPTY_BODY"
	ErrCodeProviderAuthentication = "PROVIDER_AUTHENTICATION_FAILED"
	ErrCodeProviderRejected       = "PROVIDER_REJECTED"
	ErrCodeProviderTimeout        = "PROVIDER_TIMEOUT"
	ErrCodeProviderUnavailable    = "PROVIDER_UNAVAILABLE"
	ErrCodeInternalError          = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody     = "failed to parse request body"
	ErrMsgValidationFailed       = "request validation failed"
	ErrMsgNoRecipients           = "message has no recipients"
	ErrMsgEmptyBody              = "message body is empty"
	ErrMsgProviderAuthentication = "SMS provider rejected the configured credentials"
	ErrMsgProviderRejected       = "SMS provider rejected the request"
	ErrMsgProviderTimeout        = "SMS provider timed out"
	ErrMsgProviderUnavailable    = "SMS provider is unavailable"
	ErrMsgInternalError          = "Internal server error"
)

const MessageErrorFormat = "field %s is invalid"

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody:     ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:       ErrMsgValidationFailed,
	ErrCodeNoRecipients:           ErrMsgNoRecipients,
	ErrCodeEmptyBody:              ErrMsgEmptyBody,
	ErrCodeProviderAuthentication: ErrMsgProviderAuthentication,
	ErrCodeProviderRejected:       ErrMsgProviderRejected,
	ErrCodeProviderTimeout:        ErrMsgProviderTimeout,
	ErrCodeProviderUnavailable:    ErrMsgProviderUnavailable,
	ErrCodeInternalError:          ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case ErrCodeValidationFailed, ErrCodeNoRecipients, ErrCodeEmptyBody:
		return http.StatusUnprocessableEntity
	case ErrCodeProviderAuthentication, ErrCodeProviderRejected:
		return http.StatusBadGateway
	case ErrCodeProviderTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeProviderUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
