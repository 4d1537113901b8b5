package service

import "github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"

type SendResult struct {
	Reference        string                `json:"reference,omitempty"`
	PrivateReference string                `json:"private_reference,omitempty"`
	Results          []smsbroadcast.Result `json:"results"`
}
