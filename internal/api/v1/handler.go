package v1

import (
	"github.com/Behyna/sms-services/smsbroadcast/internal/api/validator"
	"github.com/Behyna/sms-services/smsbroadcast/internal/constants"
	"github.com/Behyna/sms-services/smsbroadcast/internal/service"
	"github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const codeSuccess = "success"

type Handler struct {
	logger     *zap.Logger
	channel    service.ChannelService
	xValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, channel service.ChannelService, xValidator validator.IXValidator) *Handler {
	return &Handler{logger: logger, channel: channel, xValidator: xValidator}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) SendMessage(c *fiber.Ctx) error {
	var request SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.ByteString("body", c.Body()))
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	if errs := h.xValidator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Request validation failed", zap.Any("errors", errs))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
			Code:    constants.ErrCodeValidationFailed,
			Message: h.xValidator.Message(errs, constants.MessageErrorFormat),
		})
	}

	result, err := h.channel.Send(c.UserContext(), nil, service.MessageNotification{Message: buildMessage(request)})
	if err != nil {
		return err
	}

	h.logger.Info("Message sent",
		zap.Int("recipients", len(result.Results)),
		zap.String("reference", result.Reference))

	return c.Status(fiber.StatusCreated).JSON(Response{Successful: true, Code: codeSuccess, Result: result})
}

func (h *Handler) Deliveries(c *fiber.Ctx) error {
	deliveries, err := h.channel.Deliveries(c.UserContext(), c.Query("private_reference"))
	if err != nil {
		return err
	}

	return c.JSON(Response{Successful: true, Code: codeSuccess, Result: newDeliveryResponses(deliveries)})
}

func (h *Handler) Balance(c *fiber.Ctx) error {
	credits, err := h.channel.Balance(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(Response{Successful: true, Code: codeSuccess, Result: BalanceResponse{Credits: credits}})
}

func buildMessage(request SendMessageRequest) *smsbroadcast.Message {
	msg := smsbroadcast.Create(request.Body).
		SetRecipients(request.Recipients...).
		SetReference(request.Reference).
		SetPrivateReference(request.PrivateReference)

	if request.From != "" {
		msg.SetFrom(request.From)
	}
	if request.NoFrom {
		msg.SetNoFrom()
	}
	if request.MaxSplit != nil {
		msg.SetMaxSplit(*request.MaxSplit)
	}
	if request.Delay != nil {
		msg.SetDelay(*request.Delay)
	}

	return msg
}
