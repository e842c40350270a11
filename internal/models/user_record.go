package models

import "time"

// UserRecord anchors a set of attribute values. The row itself carries no
// roster fields; everything the console shows for a user lives in
// user_attribute_values.
type UserRecord struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserRecord) TableName() string {
	return "user_records"
}
