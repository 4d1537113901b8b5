package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/stretchr/testify/mock"
)

type ChannelService struct {
	mock.Mock
}

func (c *ChannelService) Send(ctx context.Context, notifiable service.Notifiable, notification service.Notification) (service.SendResult, error) {
	args := c.Called(ctx, notifiable, notification)
	return args.Get(0).(service.SendResult), args.Error(1)
}

func (c *ChannelService) Deliveries(ctx context.Context, privateReference string) ([]model.Delivery, error) {
	args := c.Called(ctx, privateReference)
	return args.Get(0).([]model.Delivery), args.Error(1)
}

func (c *ChannelService) Balance(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}
