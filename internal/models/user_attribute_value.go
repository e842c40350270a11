package models

import "time"

// UserAttributeValue is one EAV row: exactly one of the three value columns
// is non-null, selected by the referenced definition's attribute type.
//
// The Attribute association is a non-owning reference: deleting a definition
// does not cascade here. Rows whose definition is gone persist in the table
// but are excluded from joined reads.
type UserAttributeValue struct {
	UserID      uint       `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	AttributeID uint       `gorm:"primaryKey;autoIncrement:false" json:"attribute_id"`
	ValueText   *string    `gorm:"size:1000" json:"value_text"`
	ValueNumber *float64   `json:"value_number"`
	ValueDate   *time.Time `gorm:"type:date" json:"value_date"`

	Attribute *AttributeDefinition `gorm:"foreignKey:AttributeID;references:AttributeID" json:"attribute,omitempty"`
}

func (UserAttributeValue) TableName() string {
	return "user_attribute_values"
}
