package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/internal/mocks"
	"github.com/Behyna/sms-services/smsbroadcast/internal/publishers"
	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestEventPublisher_Dispatch(t *testing.T) {
	event := service.Event{
		Type:             service.EventMessageSent,
		Reference:        "order-42",
		PrivateReference: "user-7:order-42",
		Recipient:        "0400111222",
		SMSRef:           "2942263",
		OccurredAt:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("publishes json to the events queue", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		publisher := publishers.NewEventPublisher(mockPublisher, "smsbroadcast.events", zap.NewNop())

		mockPublisher.On("Publish", context.Background(), "", "smsbroadcast.events",
			mock.MatchedBy(func(body []byte) bool {
				var decoded map[string]any
				if err := json.Unmarshal(body, &decoded); err != nil {
					return false
				}
				return decoded["type"] == "message.sent" &&
					decoded["private_reference"] == "user-7:order-42" &&
					decoded["sms_ref"] == "2942263" &&
					decoded["occurred_at"] == "2025-01-02T03:04:05Z"
			})).Return(nil)

		err := publisher.Dispatch(context.Background(), event)

		assert.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("returns publish errors", func(t *testing.T) {
		mockPublisher := &mocks.Publisher{}
		publisher := publishers.NewEventPublisher(mockPublisher, "smsbroadcast.events", zap.NewNop())

		publishErr := errors.New("channel closed")
		mockPublisher.On("Publish", context.Background(), "", "smsbroadcast.events", mock.Anything).Return(publishErr)

		err := publisher.Dispatch(context.Background(), event)

		assert.Equal(t, publishErr, err)
	})
}
