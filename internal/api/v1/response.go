package v1

import (
	"time"

	"github.com/Behyna/sms-services/smsbroadcast/internal/model"
)

type Response struct {
	Successful bool   `json:"successful"`
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	Result     any    `json:"result,omitempty"`
}

type BalanceResponse struct {
	Credits int `json:"credits"`
}

type DeliveryResponse struct {
	Reference        string `json:"reference,omitempty"`
	PrivateReference string `json:"private_reference"`
	Recipient        string `json:"recipient"`
	SMSRef           string `json:"sms_ref,omitempty"`
	Status           string `json:"status"`
	Error            string `json:"error,omitempty"`
	CreatedAt        string `json:"created_at"`
}

func newDeliveryResponses(deliveries []model.Delivery) []DeliveryResponse {
	out := make([]DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		res := DeliveryResponse{
			Reference:        d.Reference,
			PrivateReference: d.PrivateReference,
			Recipient:        d.Recipient,
			Status:           string(d.Status),
			CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339),
		}
		if d.SMSRef != nil {
			res.SMSRef = *d.SMSRef
		}
		if d.Error != nil {
			res.Error = *d.Error
		}
		out = append(out, res)
	}

	return out
}
