package dto

// AttributeRequest carries the three mutable fields of a definition. Used by
// both create and full-replace update.
type AttributeRequest struct {
	AttributeName string `json:"attribute_name"`
	AttributeType string `json:"attribute_type"`
	IsRequired    bool   `json:"is_required"`
}
