package ucr

import (
	"testing"

	"gotest.tools/v3/assert"
)

// assertTablesPresent asserts that every table has all three buckets in the payload, even if empty.
func assertTablesPresent(t *testing.T, payload *Payload, tables ...string) {
	t.Helper()
	for _, table := range tables {
		rows, ok := payload.Create[table]
		assert.Assert(t, ok, "table %s not in create", table)
		assert.Assert(t, rows != nil, "table %s create is nil", table)

		rows, ok = payload.Update[table]
		assert.Assert(t, ok, "table %s not in update", table)
		assert.Assert(t, rows != nil, "table %s update is nil", table)

		ids, ok := payload.Remove[table]
		assert.Assert(t, ok, "table %s not in remove", table)
		assert.Assert(t, ids != nil, "table %s remove is nil", table)
	}
}
