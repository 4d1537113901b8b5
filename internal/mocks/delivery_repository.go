package mocks

import (
	"context"

	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
	"github.com/stretchr/testify/mock"
)

type DeliveryRepository struct {
	mock.Mock
}

func (d *DeliveryRepository) CreateBatch(ctx context.Context, deliveries []model.Delivery) error {
	args := d.Called(ctx, deliveries)
	return args.Error(0)
}

func (d *DeliveryRepository) GetByPrivateReference(ctx context.Context, privateReference string) ([]model.Delivery, error) {
	args := d.Called(ctx, privateReference)
	return args.Get(0).([]model.Delivery), args.Error(1)
}

func (d *DeliveryRepository) GetByReference(ctx context.Context, reference string) ([]model.Delivery, error) {
	args := d.Called(ctx, reference)
	return args.Get(0).([]model.Delivery), args.Error(1)
}
