package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/stretchr/testify/mock"
)

type EventDispatcher struct {
	mock.Mock
}

func (e *EventDispatcher) Dispatch(ctx context.Context, event service.Event) error {
	args := e.Called(ctx, event)
	return args.Error(0)
}
