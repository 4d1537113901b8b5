package v1_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/internal/api"
	v1 "github.com/Behyna/sms-services/smsbroadcast/internal/api/v1"
	"github.com/Behyna/sms-services/smsbroadcast/internal/api/validator"
	"github.com/Behyna/sms-services/smsbroadcast/internal/constants"
	"github.com/Behyna/sms-services/smsbroadcast/internal/middleware"
	"github.com/Behyna/sms-services/smsbroadcast/internal/mocks"
	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApp(t *testing.T, channel service.ChannelService) *fiber.App {
	t.Helper()

	xValidator, err := validator.NewXValidator(nil)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api.SetupRoutes(app, v1.NewHandler(zap.NewNop(), channel, xValidator), prometheus.NewRegistry())
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, v1.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded v1.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestHandler_SendMessage(t *testing.T) {
	t.Run("builds the message and sends it", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		mockChannel.On("Send", mock.Anything, nil, mock.MatchedBy(func(n service.Notification) bool {
			msg := n.ToSMSBroadcast(nil)
			body, _ := msg.Body()
			maxSplit, hasMaxSplit := msg.MaxSplit()
			_, hasDelay := msg.Delay()
			return body == "Hello World" &&
				msg.Recipients() == "0400111222,0400333444" &&
				msg.From() == "Acme" &&
				!msg.NoFrom() &&
				msg.Reference() == "abcdefghijklmnopqrst" &&
				msg.PrivateReference() == "user-7" &&
				hasMaxSplit && maxSplit == 2 &&
				!hasDelay
		})).Return(service.SendResult{
			Reference:        "abcdefghijklmnopqrst",
			PrivateReference: "user-7",
			Results: []smsbroadcast.Result{
				{Status: smsbroadcast.ResultStatusOK, Recipient: "0400111222", SMSRef: "1"},
				{Status: smsbroadcast.ResultStatusOK, Recipient: "0400333444", SMSRef: "2"},
			},
		}, nil)

		status, resp := doRequest(t, app, "POST", "/v1/messages", `{
			"body": "  Hello World ",
			"from": "Acme",
			"recipients": ["0400111222", "0400333444"],
			"reference": "abcdefghijklmnopqrstuvwxyz",
			"private_reference": "user-7",
			"max_split": 2
		}`)

		assert.Equal(t, 201, status)
		assert.True(t, resp.Successful)
		assert.Equal(t, "success", resp.Code)
		mockChannel.AssertExpectations(t)
	})

	t.Run("no from", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		mockChannel.On("Send", mock.Anything, nil, mock.MatchedBy(func(n service.Notification) bool {
			msg := n.ToSMSBroadcast(nil)
			delay, hasDelay := msg.Delay()
			return msg.NoFrom() && hasDelay && delay == 0
		})).Return(service.SendResult{}, nil)

		status, _ := doRequest(t, app, "POST", "/v1/messages",
			`{"body": "hi", "recipients": ["0400111222"], "no_from": true, "delay": 0}`)

		assert.Equal(t, 201, status)
		mockChannel.AssertExpectations(t)
	})

	t.Run("invalid json", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		status, resp := doRequest(t, app, "POST", "/v1/messages", `{"body":`)

		assert.Equal(t, 400, status)
		assert.Equal(t, constants.ErrCodeInvalidRequestBody, resp.Code)
		mockChannel.AssertNotCalled(t, "Send")
	})

	t.Run("validation failure", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		status, resp := doRequest(t, app, "POST", "/v1/messages", `{"body": "hi", "recipients": []}`)

		assert.Equal(t, 422, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, resp.Code)
		assert.Equal(t, "field Recipients is invalid", resp.Message)
		mockChannel.AssertNotCalled(t, "Send")
	})

	t.Run("service errors go through the error handler", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		mockChannel.On("Send", mock.Anything, nil, mock.Anything).Return(service.SendResult{},
			service.NewServiceError(constants.ErrCodeProviderAuthentication, smsbroadcast.ErrAuthentication))

		status, resp := doRequest(t, app, "POST", "/v1/messages", `{"body": "hi", "recipients": ["0400111222"]}`)

		assert.Equal(t, 502, status)
		assert.Equal(t, constants.ErrCodeProviderAuthentication, resp.Code)
	})
}

func TestHandler_Deliveries(t *testing.T) {
	t.Run("lists deliveries", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		smsRef := "2942263"
		mockChannel.On("Deliveries", mock.Anything, "user-7").Return([]model.Delivery{{
			PrivateReference: "user-7",
			Recipient:        "0400111222",
			SMSRef:           &smsRef,
			Status:           model.DeliveryStatusSent,
			CreatedAt:        time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}}, nil)

		status, resp := doRequest(t, app, "GET", "/v1/deliveries?private_reference=user-7", "")

		assert.Equal(t, 200, status)
		result := resp.Result.([]any)
		require.Len(t, result, 1)
		first := result[0].(map[string]any)
		assert.Equal(t, "2942263", first["sms_ref"])
		assert.Equal(t, "SENT", first["status"])
		assert.Equal(t, "2025-01-02T03:04:05Z", first["created_at"])
	})

	t.Run("missing private reference", func(t *testing.T) {
		mockChannel := &mocks.ChannelService{}
		app := newApp(t, mockChannel)

		mockChannel.On("Deliveries", mock.Anything, "").Return([]model.Delivery(nil),
			service.NewServiceError(constants.ErrCodeValidationFailed, service.ErrMissingPrivateReference))

		status, resp := doRequest(t, app, "GET", "/v1/deliveries", "")

		assert.Equal(t, 422, status)
		assert.Equal(t, constants.ErrCodeValidationFailed, resp.Code)
	})
}

func TestHandler_Balance(t *testing.T) {
	mockChannel := &mocks.ChannelService{}
	app := newApp(t, mockChannel)

	mockChannel.On("Balance", mock.Anything).Return(75, nil)

	status, resp := doRequest(t, app, "GET", "/v1/balance", "")

	assert.Equal(t, 200, status)
	assert.Equal(t, 75.0, resp.Result.(map[string]any)["credits"])

	mockChannel.On("Balance", mock.Anything).Unset()
	mockChannel.On("Balance", mock.Anything).Return(0, errors.New("unexpected"))

	status, resp = doRequest(t, app, "GET", "/v1/balance", "")

	assert.Equal(t, 500, status)
	assert.Equal(t, constants.ErrCodeInternalError, resp.Code)
}
