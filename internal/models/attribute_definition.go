package models

import (
	"github.com/rosterhq/roster-backend/internal/schema"
)

// AttributeDefinition is an operator-defined roster field. User records carry
// one UserAttributeValue row per definition; the declared type fixes which
// value column that row may populate.
type AttributeDefinition struct {
	AttributeID   uint                 `gorm:"primaryKey" json:"attribute_id"`
	AttributeName string               `gorm:"size:255;not null" json:"attribute_name"`
	AttributeType schema.AttributeType `gorm:"size:20;not null" json:"attribute_type"`
	IsRequired    bool                 `gorm:"not null;default:false" json:"is_required"`
}

func (AttributeDefinition) TableName() string {
	return "attribute_definitions"
}
