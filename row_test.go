package ucr

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestRowGet(t *testing.T) {
	row := Row{"taskId": "3", "completed": true}

	v, exists, isType := RowGet[string](row, "taskId")
	assert.Assert(t, exists)
	assert.Assert(t, isType)
	assert.Equal(t, "3", v)

	_, exists, isType = RowGet[string](row, "completed")
	assert.Assert(t, exists)
	assert.Assert(t, !isType)

	_, exists, _ = RowGet[string](row, "name")
	assert.Assert(t, !exists)

	assert.Equal(t, "none", row.GetDefault("name", "none"))
	assert.Assert(t, row.GetOrNil("name") == nil)
	assert.DeepEqual(t, []string{"completed", "taskId"}, row.FieldNames())
}
