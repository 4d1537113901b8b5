package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "SENT"
	DeliveryStatusFailed DeliveryStatus = "FAILED"
)

// Delivery is the local record of one recipient of a sent message. The
// private reference lives only here and in published events.
type Delivery struct {
	ID               int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	Reference        string         `gorm:"column:reference;type:varchar(20);index"`
	PrivateReference string         `gorm:"column:private_reference;type:varchar(255);index"`
	Recipient        string         `gorm:"column:recipient;type:varchar(32);not null"`
	SMSRef           *string        `gorm:"column:sms_ref;type:varchar(64);uniqueIndex"`
	Status           DeliveryStatus `gorm:"column:status;type:enum('SENT','FAILED');not null"`
	Error            *string        `gorm:"column:error;type:text"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
}
