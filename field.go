package ucr

import (
	"maps"
	"slices"
)

// Field is a form field value tagged with the operation it takes part in.
type Field struct {
	Action Action
	Value  any
}

// None returns an untagged field, as loaded from storage.
func None(value any) Field {
	return Field{Action: ActionNone, Value: value}
}

// Create returns a field of a row to be created.
func Create(value any) Field {
	return Field{Action: ActionCreate, Value: value}
}

// Update returns an edited field of an existing row.
func Update(value any) Field {
	return Field{Action: ActionUpdate, Value: value}
}

// Remove returns a field of a row to be removed.
func Remove(value any) Field {
	return Field{Action: ActionRemove, Value: value}
}

// ID returns the primary key field of a row.
func ID(value any) Field {
	return Field{Action: ActionID, Value: value}
}

// Object is a set of tagged fields representing one database row in progress, keyed by column name.
type Object map[string]Field

// Disposition resolves the action of the whole object from its field tags.
// REMOVE has precedence over CREATE, which has precedence over UPDATE. Objects with only untagged or ID
// fields resolve to DispositionNone.
func (o Object) Disposition() Disposition {
	var isCreate, isUpdate, isRemove bool
	for _, field := range o {
		switch field.Action {
		case ActionCreate:
			isCreate = true
		case ActionUpdate:
			isUpdate = true
		case ActionRemove:
			isRemove = true
		}
	}

	switch {
	case isRemove:
		return DispositionRemove
	case isCreate:
		return DispositionCreate
	case isUpdate:
		return DispositionUpdate
	default:
		return DispositionNone
	}
}

// IDField returns the name and value of the field tagged ActionID.
// If more than one field is tagged, a [ConflictingIDError] is returned.
func (o Object) IDField() (name string, value any, found bool, err error) {
	names := o.idFieldNames()
	switch len(names) {
	case 0:
		return "", nil, false, nil
	case 1:
		return names[0], o[names[0]].Value, true, nil
	default:
		return "", nil, false, &ConflictingIDError{Index: -1, Fields: names}
	}
}

// Row returns the tag-stripped field values for a disposition.
// Create rows omit the ID field and the CREATE fields still holding an empty placeholder value ("" or nil),
// which is how a new row carries its not yet assigned id column. Update rows keep the ID field under its
// original name. Other dispositions don't have a row.
func (o Object) Row(disposition Disposition) Row {
	return o.row(disposition, nil)
}

// row is Row, also omitting from create rows the fields in idColumns.
func (o Object) row(disposition Disposition, idColumns map[string]struct{}) Row {
	switch disposition {
	case DispositionCreate, DispositionUpdate:
	default:
		return nil
	}

	row := make(Row, len(o))
	for fieldName, field := range o {
		if disposition == DispositionCreate {
			if field.Action == ActionID {
				continue
			}
			if field.Action == ActionCreate && isEmptyValue(field.Value) {
				continue
			}
			if _, ok := idColumns[fieldName]; ok {
				continue
			}
		}
		row[fieldName] = field.Value
	}
	return row
}

// idFieldNames returns the sorted names of all fields tagged ActionID.
func (o Object) idFieldNames() []string {
	var names []string
	for fieldName, field := range o {
		if field.Action == ActionID {
			names = append(names, fieldName)
		}
	}
	slices.Sort(names)
	return names
}

// invalidActionField returns the first (by name) field with an unknown action.
func (o Object) invalidActionField() (string, bool) {
	for _, fieldName := range slices.Sorted(maps.Keys(o)) {
		if !o[fieldName].Action.IsValid() {
			return fieldName, true
		}
	}
	return "", false
}

func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}
