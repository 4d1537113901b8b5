package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/stretchr/testify/mock"
)

type SMSClient struct {
	mock.Mock
}

func (s *SMSClient) Send(ctx context.Context, msg *smsbroadcast.Message) (smsbroadcast.Response, error) {
	args := s.Called(ctx, msg)
	return args.Get(0).(smsbroadcast.Response), args.Error(1)
}

func (s *SMSClient) Balance(ctx context.Context) (int, error) {
	args := s.Called(ctx)
	return args.Int(0), args.Error(1)
}
