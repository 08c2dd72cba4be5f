package models

import (
	"bytes"
	"encoding/json"
)

// NullableString tells three JSON states apart: field absent (Set false),
// explicit null (Set true, Value nil) and a string value.
type NullableString struct {
	Set   bool
	Value *string
}

// NewNullableString returns a set value; nil means "clear".
func NewNullableString(v *string) NullableString {
	return NullableString{Set: true, Value: v}
}

// UnmarshalJSON is only called for keys present in the document.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
