package ucr

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Transform classifies each object of the form input as a create, update or remove, and groups the
// tag-stripped rows by table name.
// Every table in the input is present in all three payload buckets. Any error aborts the whole call and no
// payload is returned.
func Transform(input FormInput, options ...TransformOption) (*Payload, error) {
	t := &transformer{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt.apply(t)
	}
	return t.transform(input)
}

// WithIDConverter sets a converter for the id values added to the update and remove buckets.
func WithIDConverter(converter IDConverter) TransformOption {
	return fnTransformOption(func(t *transformer) {
		t.idConverter = converter
	})
}

// WithRemoveIDConverter sets a converter used only for the ids added to the remove bucket, taking
// precedence over [WithIDConverter] there.
func WithRemoveIDConverter(converter IDConverter) TransformOption {
	return fnTransformOption(func(t *transformer) {
		t.removeIDConverter = converter
	})
}

// WithIDColumns sets id column names of a table that are always omitted from its create rows, even when a new
// row fills them with a value.
func WithIDColumns(table string, columns ...string) TransformOption {
	return fnTransformOption(func(t *transformer) {
		if t.idColumns == nil {
			t.idColumns = map[string]map[string]struct{}{}
		}
		if t.idColumns[table] == nil {
			t.idColumns[table] = map[string]struct{}{}
		}
		for _, column := range columns {
			t.idColumns[table][column] = struct{}{}
		}
	})
}

// WithTables restricts the transform to a list of table names. Other tables are ignored and don't
// appear in the payload.
func WithTables(tables ...string) TransformOption {
	return fnTransformOption(func(t *transformer) {
		if t.tables == nil {
			t.tables = map[string]struct{}{}
		}
		for _, table := range tables {
			t.tables[table] = struct{}{}
		}
	})
}

// WithLogger sets a logger to debug how each object was classified.
func WithLogger(logger *slog.Logger) TransformOption {
	return fnTransformOption(func(t *transformer) {
		t.logger = logger
	})
}

// IDConverter converts an id value before it is added to the payload.
type IDConverter interface {
	ConvertID(table string, fieldName string, value any) (any, error)
}

// IDConverterFunc is a func adapter for IDConverter.
type IDConverterFunc func(table string, fieldName string, value any) (any, error)

func (f IDConverterFunc) ConvertID(table string, fieldName string, value any) (any, error) {
	return f(table, fieldName, value)
}

type transformer struct {
	idConverter       IDConverter
	removeIDConverter IDConverter
	idColumns         map[string]map[string]struct{}
	tables            map[string]struct{}
	logger            *slog.Logger
}

func (t *transformer) transform(input FormInput) (*Payload, error) {
	// sorted so the reported error doesn't depend on map iteration order.
	var tableNames []string
	for _, tableName := range slices.Sorted(maps.Keys(input)) {
		if t.tables != nil {
			if _, ok := t.tables[tableName]; !ok {
				continue
			}
		}
		tableNames = append(tableNames, tableName)
	}

	payload := NewPayload(tableNames...)

	for _, tableName := range tableNames {
		objects, isSingle, err := tableObjects(tableName, input[tableName])
		if err != nil {
			return nil, err
		}
		for idx, object := range objects {
			index := idx
			if isSingle {
				index = -1
			}
			if err := t.addObject(payload, tableName, index, object); err != nil {
				return nil, err
			}
		}
	}

	return payload, nil
}

// addObject resolves one object and appends its row or id to the matching bucket.
func (t *transformer) addObject(payload *Payload, table string, index int, object Object) error {
	if fieldName, ok := object.invalidActionField(); ok {
		return &MalformedInputError{
			Table:  table,
			Reason: fmt.Sprintf("field '%s' has invalid action %s", fieldName, object[fieldName].Action),
		}
	}

	disposition := object.Disposition()

	t.logger.Debug("object classified",
		"table", table,
		"index", index,
		"disposition", disposition.String())

	if disposition == DispositionNone {
		return nil
	}

	idFields := object.idFieldNames()
	if len(idFields) > 1 {
		return &ConflictingIDError{Table: table, Index: index, Fields: idFields}
	}

	var (
		idField string
		idValue any
	)
	if len(idFields) == 1 {
		idField = idFields[0]
		idValue = object[idField].Value
	}
	if disposition.requiresID() {
		// an empty id can't identify the row to change.
		if len(idFields) == 0 || isEmptyValue(idValue) {
			return &MissingIDError{Table: table, Index: index, Disposition: disposition}
		}
		if converter := t.converterFor(disposition); converter != nil {
			var err error
			idValue, err = converter.ConvertID(table, idField, idValue)
			if err != nil {
				return &IDConversionError{Table: table, Index: index, Field: idField, Err: err}
			}
		}
	}

	switch disposition {
	case DispositionCreate:
		payload.Create[table] = append(payload.Create[table], object.row(disposition, t.idColumns[table]))
	case DispositionUpdate:
		row := object.row(disposition, nil)
		row[idField] = idValue
		payload.Update[table] = append(payload.Update[table], row)
	case DispositionRemove:
		payload.Remove[table] = append(payload.Remove[table], idValue)
	}

	return nil
}

// tableObjects returns the objects of a table input, and whether it is a single-object table.
func tableObjects(table string, input TableInput) ([]Object, bool, error) {
	switch ti := input.(type) {
	case nil:
		return nil, false, &MalformedInputError{Table: table, Reason: "table input is nil"}
	case *Single:
		if ti == nil {
			return nil, false, &MalformedInputError{Table: table, Reason: "table input is nil"}
		}
	case *Many:
		if ti == nil {
			return nil, false, &MalformedInputError{Table: table, Reason: "table input is nil"}
		}
	}
	objects, isSingle := input.objects()
	return objects, isSingle, nil
}

func (t *transformer) converterFor(disposition Disposition) IDConverter {
	if disposition == DispositionRemove && t.removeIDConverter != nil {
		return t.removeIDConverter
	}
	return t.idConverter
}
