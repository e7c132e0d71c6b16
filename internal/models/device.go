package models

import "time"

// DeviceIdentity holds the install-scoped identifier sent as X-Device-ID.
// One row exists per installation; it is generated on first use and never
// rotated.
type DeviceIdentity struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	DeviceID  string    `gorm:"size:36;not null;uniqueIndex" json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (DeviceIdentity) TableName() string {
	return "device_identities"
}
