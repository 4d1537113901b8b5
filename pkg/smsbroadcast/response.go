package smsbroadcast

import (
	"strconv"
	"strings"
)

type ResultStatus string

const (
	ResultStatusOK  ResultStatus = "OK"
	ResultStatusBad ResultStatus = "BAD"

	lineError = "ERROR"
)

// Result is the provider outcome for one recipient.
type Result struct {
	Status    ResultStatus `json:"status"`
	Recipient string       `json:"recipient"`
	SMSRef    string       `json:"sms_ref,omitempty"`
	Error     string       `json:"error,omitempty"`
}

func (r Result) Accepted() bool {
	return r.Status == ResultStatusOK
}

type Response struct {
	Results []Result `json:"results"`
}

func (r Response) Accepted() []Result {
	return r.filter(true)
}

func (r Response) Rejected() []Result {
	return r.filter(false)
}

func (r Response) filter(accepted bool) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Accepted() == accepted {
			out = append(out, res)
		}
	}

	return out
}

// ParseSendResponse reads the plain-text send response, one line per
// recipient:
//
//	OK: 61400111222: 2942263
//	BAD:0400abc111:Invalid Number
//
// An "ERROR:" line fails the whole request.
func ParseSendResponse(body string) (Response, error) {
	var res Response

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 3)
		status := strings.TrimSpace(parts[0])

		if status == lineError {
			return Response{}, providerError(parts[1:])
		}

		if len(parts) != 3 {
			return Response{}, ErrInvalidResponse
		}

		result := Result{
			Status:    ResultStatus(status),
			Recipient: strings.TrimSpace(parts[1]),
		}

		switch result.Status {
		case ResultStatusOK:
			result.SMSRef = strings.TrimSpace(parts[2])
		case ResultStatusBad:
			result.Error = strings.TrimSpace(parts[2])
		default:
			return Response{}, ErrInvalidResponse
		}

		res.Results = append(res.Results, result)
	}

	if len(res.Results) == 0 {
		return Response{}, ErrInvalidResponse
	}

	return res, nil
}

// ParseBalanceResponse reads "OK: <credits>".
func ParseBalanceResponse(body string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(body), ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidResponse
	}

	switch strings.TrimSpace(parts[0]) {
	case string(ResultStatusOK):
		credits, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, ErrInvalidResponse
		}
		return credits, nil
	case lineError:
		return 0, providerError(parts[1:])
	default:
		return 0, ErrInvalidResponse
	}
}

func providerError(rest []string) error {
	reason := strings.TrimSpace(strings.Join(rest, ":"))

	lower := strings.ToLower(reason)
	if strings.Contains(lower, "username") || strings.Contains(lower, "password") {
		return &ProviderError{Err: ErrAuthentication, Reason: reason}
	}

	return &ProviderError{Err: ErrRequestRejected, Reason: reason}
}
