package ucr

import (
	"maps"
	"slices"
)

// Row is a plain row of field values, with the action tags stripped.
type Row map[string]any

// Get gets the value of a field, returning whether the field exists.
func (r Row) Get(fieldName string) (val any, exists bool) {
	val, exists = r[fieldName]
	return
}

// GetOrNil gets the value of a field, or nil if the field don't exist.
func (r Row) GetOrNil(fieldName string) any {
	return r[fieldName]
}

// GetDefault gets the value of a field, or a default value if the field don't exist.
func (r Row) GetDefault(fieldName string, def any) any {
	if val, ok := r[fieldName]; ok {
		return val
	}
	return def
}

// FieldNames returns the sorted field names of the row.
func (r Row) FieldNames() []string {
	return slices.Sorted(maps.Keys(r))
}

// RowGet gets a value from a row casting to the T type.
func RowGet[T any](row Row, fieldName string) (val T, exists bool, isType bool) {
	v, ok := row[fieldName]
	if !ok {
		var ret T
		return ret, ok, false
	}
	vt, ok := v.(T)
	return vt, true, ok
}
