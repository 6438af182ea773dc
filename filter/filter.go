package filter

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/rrgmc/ucr"
)

// Rows returns the rows of a single table of the create or update bucket of a [ucr.Payload], converting
// each [ucr.Row] to a concrete type using generics. Rows are returned in payload order.
func Rows[T any](payload *ucr.Payload, bucket ucr.Disposition, table string, f func(row ucr.Row) (T, error),
	options ...FilterRowsOption) ([]T, error) {
	var optns filterRowsOptions
	for _, op := range options {
		op(&optns)
	}

	var rows []ucr.Row
	switch bucket {
	case ucr.DispositionCreate:
		rows = payload.Create[table]
	case ucr.DispositionUpdate:
		rows = payload.Update[table]
	default:
		return nil, fmt.Errorf("bucket %s has no rows", bucket)
	}

	var ret []T
	for idx, row := range rows {
		include := true

		// filter fields
		for filterField, filterValue := range optns.filterFields {
			fieldValue, isField := row[filterField]
			if !isField || !cmp.Equal(filterValue, fieldValue, optns.cmpOptions...) {
				include = false
				break
			}
		}

		// filter func
		if include && optns.filterRow != nil {
			isRow, err := optns.filterRow(row)
			if err != nil {
				return nil, fmt.Errorf("error filtering table '%s' row %d: %w", table, idx, err)
			}
			include = isRow
		}

		if include {
			data, err := f(row)
			if err != nil {
				return nil, fmt.Errorf("error converting table '%s' row %d: %w", table, idx, err)
			}
			ret = append(ret, data)
		}
	}

	return ret, nil
}

// IDs returns the ids of a single table of the remove bucket of a [ucr.Payload], converting each one to a
// concrete type.
func IDs[T any](payload *ucr.Payload, table string, f func(id any) (T, error)) ([]T, error) {
	var ret []T
	for idx, id := range payload.Remove[table] {
		data, err := f(id)
		if err != nil {
			return nil, fmt.Errorf("error converting table '%s' id %d: %w", table, idx, err)
		}
		ret = append(ret, data)
	}
	return ret, nil
}

type filterRowsOptions struct {
	filterFields map[string]any
	filterRow    func(row ucr.Row) (bool, error)
	cmpOptions   []cmp.Option
}

type FilterRowsOption func(*filterRowsOptions)

// WithFilterFields filters fields values, compared using [cmp.Equal].
// All requested filters must return true to select the row.
func WithFilterFields(fields map[string]any) FilterRowsOption {
	return func(o *filterRowsOptions) {
		o.filterFields = fields
	}
}

// WithFilterRow filters using a callback.
// All requested filters must return true to select the row.
func WithFilterRow(filterRow func(row ucr.Row) (bool, error)) FilterRowsOption {
	return func(o *filterRowsOptions) {
		o.filterRow = filterRow
	}
}

// WithFilterCmpOptions sets the [cmp.Option] used to compare field values.
func WithFilterCmpOptions(options ...cmp.Option) FilterRowsOption {
	return func(o *filterRowsOptions) {
		o.cmpOptions = append(o.cmpOptions, options...)
	}
}
