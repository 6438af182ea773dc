package ucr

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type jsonField struct {
	Action string `json:"action"`
	Value  any    `json:"value"`
}

// MarshalJSON encodes the field as {"action": "UPDATE", "value": x}.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Action.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAction, f.Action)
	}
	return json.Marshal(jsonField{Action: f.Action.String(), Value: f.Value})
}

// UnmarshalJSON decodes the {"action": "UPDATE", "value": x} field form. A missing action is ActionNone.
func (f *Field) UnmarshalJSON(data []byte) error {
	var jf jsonField
	if err := json.Unmarshal(data, &jf); err != nil {
		return err
	}
	switch jf.Value.(type) {
	case map[string]any, []any:
		return &MalformedInputError{Reason: "field value must be a scalar"}
	}
	action, err := ParseAction(jf.Action)
	if err != nil {
		return err
	}
	f.Action = action
	f.Value = jf.Value
	return nil
}

func (s Single) MarshalJSON() ([]byte, error) {
	if s.Object == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Object)
}

func (m Many) MarshalJSON() ([]byte, error) {
	if m.Objects == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.Objects)
}

// UnmarshalJSON decodes a form where each table is either a JSON object (a [Single] table) or an array of
// objects (a [Many] table).
func (fi *FormInput) UnmarshalJSON(data []byte) error {
	var tables map[string]json.RawMessage
	if err := json.Unmarshal(data, &tables); err != nil {
		return err
	}

	ret := make(FormInput, len(tables))
	for tableName, raw := range tables {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 {
			return &MalformedInputError{Table: tableName, Reason: "empty table value"}
		}
		switch raw[0] {
		case '{':
			var object Object
			if err := json.Unmarshal(raw, &object); err != nil {
				return fmt.Errorf("table '%s': %w", tableName, err)
			}
			ret[tableName] = SingleObject(object)
		case '[':
			var objects []Object
			if err := json.Unmarshal(raw, &objects); err != nil {
				return fmt.Errorf("table '%s': %w", tableName, err)
			}
			for idx, object := range objects {
				if object == nil {
					return &MalformedInputError{Table: tableName, Reason: fmt.Sprintf("row %d is not an object", idx)}
				}
			}
			ret[tableName] = ManyObjects(objects...)
		default:
			return &MalformedInputError{Table: tableName, Reason: "table must be an object or a list of objects"}
		}
	}

	*fi = ret
	return nil
}
