package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Value holds a checklist item's answer. At most one field is set, chosen by
// the item's type; a zero Value means the item is unanswered. The JSON form
// is the raw polymorphic value (true, "text", 4.5 or null) so persisted data
// stays compatible with the original client format.
type Value struct {
	Bool   *bool
	Text   *string
	Number *float64
}

func BoolValue(b bool) Value {
	return Value{Bool: &b}
}

func TextValue(s string) Value {
	return Value{Text: &s}
}

func NumberValue(f float64) Value {
	return Value{Number: &f}
}

// IsNull reports whether the value is unanswered.
func (v Value) IsNull() bool {
	return v.Bool == nil && v.Text == nil && v.Number == nil
}

// Matches reports whether the value is legal for the given item type. A null
// value is legal for every type.
func (v Value) Matches(t ItemType) bool {
	if v.IsNull() {
		return true
	}
	switch t {
	case ItemCheckbox:
		return v.Bool != nil
	case ItemText, ItemSelect:
		return v.Text != nil
	case ItemNumber, ItemRating:
		return v.Number != nil
	default:
		return false
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.Bool != nil:
		return json.Marshal(*v.Bool)
	case v.Text != nil:
		return json.Marshal(*v.Text)
	case v.Number != nil:
		return json.Marshal(*v.Number)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode checklist value: %w", err)
	}

	switch x := raw.(type) {
	case nil:
		*v = Value{}
	case bool:
		*v = BoolValue(x)
	case string:
		*v = TextValue(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return fmt.Errorf("invalid numeric checklist value %q: %w", x, err)
		}
		*v = NumberValue(f)
	default:
		return fmt.Errorf("unsupported checklist value %s", data)
	}
	return nil
}
