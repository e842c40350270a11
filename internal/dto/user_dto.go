package dto

// UserAttributeInput is one form field as submitted by the console: the
// attribute it belongs to, the declared type driving column dispatch, and
// the raw string value. UserID is only meaningful on update, where the
// target user is derived from the first element.
type UserAttributeInput struct {
	UserID        uint   `json:"user_id,omitempty"`
	AttributeID   uint   `json:"attribute_id"`
	AttributeType string `json:"attribute_type"`
	Value         string `json:"value"`
}

type CreateUserRequest struct {
	Attributes []UserAttributeInput `json:"attributes"`
}

type UpdateUserRequest struct {
	Attributes []UserAttributeInput `json:"attributes"`
}
