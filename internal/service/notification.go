package service

import "github.com/Behyna/sms-services/smsbroadcast/pkg/smsbroadcast"

// Route is an on-demand notifiable: a plain list of numbers.
type Route []string

func (r Route) RouteNotificationForSMSBroadcast() []string {
	return r
}

// MessageNotification sends a message that is already built.
type MessageNotification struct {
	Message *smsbroadcast.Message
}

func (n MessageNotification) ToSMSBroadcast(Notifiable) *smsbroadcast.Message {
	return n.Message
}
