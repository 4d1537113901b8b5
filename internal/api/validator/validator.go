package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Behyna/sms-services/smsbroadcast/internal/metrics"
	"github.com/go-playground/validator/v10"
)

const sep = " and "

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	Validate(data interface{}) []Error
	Message(errs []Error, format string) string
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(metrics *metrics.Metrics) (IXValidator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	for key, function := range valid {
		if err := v.RegisterValidation(key, function); err != nil {
			return nil, fmt.Errorf("register %s validation: %w", key, err)
		}
	}

	return &XValidator{validator: v, metrics: metrics}, nil
}

func (x *XValidator) Validate(data interface{}) []Error {
	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []Error{{FailedField: "request", Tag: "invalid"}}
	}

	errs := make([]Error, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errs = append(errs, Error{FailedField: fe.Field(), Tag: fe.Tag(), Value: fe.Value()})

		if x.metrics != nil {
			x.metrics.RecordValidationError(fe.Field(), fe.Tag())
		}
	}

	return errs
}

func (x *XValidator) Message(errs []Error, format string) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, fmt.Sprintf(format, err.FailedField))
	}

	return strings.Join(msgs, sep)
}
