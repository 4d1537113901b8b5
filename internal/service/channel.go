package service

import (
	"context"
	"errors"
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/internal/constants"
	"github.com/Behyna/sms-services/smsbroadcast/internal/metrics"
	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
	"github.com/Behyna/sms-services/smsbroadcast/internal/repository"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifiable is anything that can receive an SMS notification.
type Notifiable interface {
	RouteNotificationForSMSBroadcast() []string
}

// Notification builds the message for a notifiable. Returning nil skips the
// send.
type Notification interface {
	ToSMSBroadcast(notifiable Notifiable) *smsbroadcast.Message
}

type ChannelService interface {
	Send(ctx context.Context, notifiable Notifiable, notification Notification) (SendResult, error)
	Deliveries(ctx context.Context, privateReference string) ([]model.Delivery, error)
	Balance(ctx context.Context) (int, error)
}

type channel struct {
	client       smsbroadcast.Client
	deliveryRepo repository.DeliveryRepository
	txManager    repository.TxManager
	events       EventDispatcher
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewChannelService(client smsbroadcast.Client, deliveryRepo repository.DeliveryRepository,
	txManager repository.TxManager, events EventDispatcher, metrics *metrics.Metrics, logger *zap.Logger) ChannelService {
	return &channel{
		client:       client,
		deliveryRepo: deliveryRepo,
		txManager:    txManager,
		events:       events,
		metrics:      metrics,
		logger:       logger,
	}
}

func (c *channel) Send(ctx context.Context, notifiable Notifiable, notification Notification) (SendResult, error) {
	msg := notification.ToSMSBroadcast(notifiable)
	if msg == nil {
		c.logger.Debug("Notification produced no message, skipping")
		return SendResult{}, nil
	}

	if len(msg.RecipientList()) == 0 && notifiable != nil {
		msg.SetRecipients(notifiable.RouteNotificationForSMSBroadcast()...)
	}

	recipients := msg.RecipientList()
	if len(recipients) == 0 {
		c.logger.Warn("Message has no recipients",
			zap.String("privateReference", msg.PrivateReference()))
		return SendResult{}, NewServiceError(constants.ErrCodeNoRecipients, smsbroadcast.ErrNoRecipients)
	}

	if body, _ := msg.Body(); body == "" {
		c.logger.Warn("Message has no body",
			zap.String("privateReference", msg.PrivateReference()))
		return SendResult{}, NewServiceError(constants.ErrCodeEmptyBody, smsbroadcast.ErrEmptyBody)
	}

	result := SendResult{Reference: msg.Reference(), PrivateReference: msg.PrivateReference()}

	c.dispatch(ctx, c.newEvent(EventMessageSending, msg, msg.Recipients()))

	c.logger.Debug("Sending SMS",
		zap.Strings("to", recipients),
		zap.String("reference", msg.Reference()),
		zap.String("privateReference", msg.PrivateReference()))

	start := time.Now()
	response, err := c.client.Send(ctx, msg)
	if err != nil {
		c.recordProviderRequest("error", time.Since(start))
		return result, c.handleSendFailure(ctx, msg, recipients, err)
	}
	c.recordProviderRequest("success", time.Since(start))

	result.Results = response.Results

	deliveries := make([]model.Delivery, 0, len(response.Results))
	for _, res := range response.Results {
		deliveries = append(deliveries, newDelivery(msg, res))
	}
	c.logDeliveries(ctx, deliveries)

	for _, res := range response.Results {
		if res.Accepted() {
			event := c.newEvent(EventMessageSent, msg, res.Recipient)
			event.SMSRef = res.SMSRef
			c.dispatch(ctx, event)
			continue
		}

		c.logger.Warn("Recipient rejected by provider",
			zap.String("to", res.Recipient),
			zap.String("reason", res.Error),
			zap.String("privateReference", msg.PrivateReference()))

		event := c.newEvent(EventMessageFailed, msg, res.Recipient)
		event.Error = res.Error
		c.dispatch(ctx, event)
	}

	c.recordMessages(model.DeliveryStatusSent, len(response.Accepted()))
	c.recordMessages(model.DeliveryStatusFailed, len(response.Rejected()))

	c.logger.Info("SMS submitted",
		zap.Int("accepted", len(response.Accepted())),
		zap.Int("rejected", len(response.Rejected())),
		zap.String("reference", msg.Reference()),
		zap.String("privateReference", msg.PrivateReference()))

	return result, nil
}

func (c *channel) handleSendFailure(ctx context.Context, msg *smsbroadcast.Message, recipients []string, err error) error {
	code := providerErrorCode(err)

	if isRequestError(err) {
		c.logger.Warn("Message not sendable", zap.Error(err),
			zap.String("privateReference", msg.PrivateReference()))
		return NewServiceError(code, err)
	}

	c.logger.Error("SMS provider call failed",
		zap.Error(err),
		zap.Strings("to", recipients),
		zap.String("privateReference", msg.PrivateReference()))

	deliveries := make([]model.Delivery, 0, len(recipients))
	for _, recipient := range recipients {
		deliveries = append(deliveries, newDelivery(msg, smsbroadcast.Result{
			Status:    smsbroadcast.ResultStatusBad,
			Recipient: recipient,
			Error:     err.Error(),
		}))
	}
	c.logDeliveries(ctx, deliveries)

	for _, recipient := range recipients {
		event := c.newEvent(EventMessageFailed, msg, recipient)
		event.Error = err.Error()
		c.dispatch(ctx, event)
	}

	c.recordMessages(model.DeliveryStatusFailed, len(recipients))

	return NewServiceError(code, err)
}

// logDeliveries never fails the send: the provider has already accepted or
// rejected the message at this point.
func (c *channel) logDeliveries(ctx context.Context, deliveries []model.Delivery) {
	err := c.txManager.WithTx(ctx, func(ctx context.Context) error {
		return c.deliveryRepo.CreateBatch(ctx, deliveries)
	})
	if err == nil {
		return
	}

	c.logger.Error("Failed to log deliveries",
		zap.Error(err),
		zap.Int("count", len(deliveries)))

	if c.metrics != nil {
		c.metrics.RecordDeliveryLogError()
	}
}

func (c *channel) dispatch(ctx context.Context, event Event) {
	outcome := "success"
	if err := c.events.Dispatch(ctx, event); err != nil {
		outcome = "error"
		c.logger.Warn("Failed to dispatch event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("privateReference", event.PrivateReference))
	}

	if c.metrics != nil {
		c.metrics.RecordEventPublished(string(event.Type), outcome)
	}
}

func (c *channel) Deliveries(ctx context.Context, privateReference string) ([]model.Delivery, error) {
	if privateReference == "" {
		return nil, NewServiceError(constants.ErrCodeValidationFailed, ErrMissingPrivateReference)
	}

	deliveries, err := c.deliveryRepo.GetByPrivateReference(ctx, privateReference)
	if err != nil {
		c.logger.Error("Failed to load deliveries",
			zap.Error(err),
			zap.String("privateReference", privateReference))
		return nil, NewServiceError(constants.ErrCodeInternalError, errors.Join(ErrDatabase, err))
	}

	return deliveries, nil
}

func (c *channel) Balance(ctx context.Context) (int, error) {
	credits, err := c.client.Balance(ctx)
	if err != nil {
		c.logger.Error("Failed to fetch balance", zap.Error(err))
		return 0, NewServiceError(providerErrorCode(err), err)
	}

	return credits, nil
}

func (c *channel) newEvent(eventType EventType, msg *smsbroadcast.Message, recipient string) Event {
	return Event{
		ID:               uuid.NewString(),
		Type:             eventType,
		Reference:        msg.Reference(),
		PrivateReference: msg.PrivateReference(),
		Recipient:        recipient,
		OccurredAt:       time.Now().UTC(),
	}
}

func (c *channel) recordProviderRequest(outcome string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordProviderRequest(outcome, duration)
	}
}

func (c *channel) recordMessages(status model.DeliveryStatus, count int) {
	if c.metrics != nil && count > 0 {
		c.metrics.RecordMessages(string(status), count)
	}
}

func newDelivery(msg *smsbroadcast.Message, res smsbroadcast.Result) model.Delivery {
	delivery := model.Delivery{
		Reference:        msg.Reference(),
		PrivateReference: msg.PrivateReference(),
		Recipient:        res.Recipient,
		Status:           model.DeliveryStatusFailed,
	}

	if res.Accepted() {
		smsRef := res.SMSRef
		delivery.SMSRef = &smsRef
		delivery.Status = model.DeliveryStatusSent
	} else if res.Error != "" {
		reason := res.Error
		delivery.Error = &reason
	}

	return delivery
}
