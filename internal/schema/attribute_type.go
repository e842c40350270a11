// Package schema defines the closed set of attribute types an operator can
// assign to a roster attribute, and the dispatch rule that maps a raw form
// value into exactly one of the three typed storage columns.
package schema

import (
	"fmt"
	"strconv"
	"time"
)

// AttributeType is the declared type of an attribute definition. It is a
// closed set: values only enter the system through ParseAttributeType, so an
// unrecognized type is rejected at the boundary instead of silently storing
// null in every value column.
type AttributeType string

const (
	TypeText   AttributeType = "text"
	TypeNumber AttributeType = "number"
	TypeDate   AttributeType = "date"
)

// DateLayout is the wire format for date-typed values.
const DateLayout = "2006-01-02"

func ParseAttributeType(s string) (AttributeType, error) {
	switch AttributeType(s) {
	case TypeText, TypeNumber, TypeDate:
		return AttributeType(s), nil
	}
	return "", fmt.Errorf("unrecognized attribute type %q", s)
}

func (t AttributeType) Valid() bool {
	_, err := ParseAttributeType(string(t))
	return err == nil
}

// TypedValue holds at most one non-nil column, selected by the attribute's
// declared type.
type TypedValue struct {
	Text   *string
	Number *float64
	Date   *time.Time
}

// BindValue dispatches a raw form value into the column matching t.
//
// Text always stores a string: an absent value becomes the empty string,
// not null. Number and date store null when the value is absent or does
// not parse.
func (t AttributeType) BindValue(raw string) TypedValue {
	switch t {
	case TypeText:
		s := raw
		return TypedValue{Text: &s}
	case TypeNumber:
		if raw == "" {
			return TypedValue{}
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TypedValue{}
		}
		return TypedValue{Number: &n}
	case TypeDate:
		if raw == "" {
			return TypedValue{}
		}
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return TypedValue{}
		}
		return TypedValue{Date: &d}
	}
	return TypedValue{}
}
