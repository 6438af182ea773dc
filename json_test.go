package ucr

import (
	"encoding/json"
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestFormInputUnmarshalJSON(t *testing.T) {
	var input FormInput
	err := json.Unmarshal([]byte(`{
  "todos": {
    "todoId": {"action": "ID", "value": "12"},
    "name": {"action": "UPDATE", "value": "Shopping"},
    "description": {"action": "update", "value": "..."}
  },
  "tasks": [
    {"taskId": {"action": "ID", "value": "3"}, "name": {"action": "UPDATE", "value": "Eggs"}, "completed": {"action": "UPDATE", "value": true}},
    {"taskId": {"action": "ID", "value": "4"}, "name": {"action": "REMOVE", "value": "Ham"}, "completed": {"action": "", "value": false}},
    {"taskId": {"action": "CREATE", "value": ""}, "name": {"action": "CREATE", "value": "Potatoes"}, "completed": {"action": "CREATE", "value": false}}
  ]
}`), &input)
	assert.NilError(t, err)

	assert.DeepEqual(t, todoForm(), input)
}

func TestFormInputJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(todoForm())
	assert.NilError(t, err)

	var input FormInput
	assert.NilError(t, json.Unmarshal(data, &input))
	assert.DeepEqual(t, todoForm(), input)
}

func TestFormInputJSONEmptyTables(t *testing.T) {
	data, err := json.Marshal(FormInput{
		"todos": Single{},
		"tasks": Many{},
	})
	assert.NilError(t, err)
	assert.Equal(t, `{"tasks":[],"todos":{}}`, string(data))

	var input FormInput
	assert.NilError(t, json.Unmarshal(data, &input))
	assert.DeepEqual(t, FormInput{
		"todos": SingleObject(Object{}),
		"tasks": Many{Objects: []Object{}},
	}, input)
}

func TestFormInputUnmarshalJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "scalar table",
			data: `{"todos": 1}`,
		},
		{
			name: "null row",
			data: `{"tasks": [null]}`,
		},
		{
			name: "object value",
			data: `{"todos": {"name": {"action": "UPDATE", "value": {"a": 1}}}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var input FormInput
			err := json.Unmarshal([]byte(test.data), &input)
			assert.Assert(t, errors.Is(err, ErrMalformedInput), "unexpected error: %v", err)
		})
	}
}

func TestFieldUnmarshalJSONInvalidAction(t *testing.T) {
	var field Field
	err := json.Unmarshal([]byte(`{"action": "DELETE", "value": 1}`), &field)
	assert.Assert(t, errors.Is(err, ErrInvalidAction))
}

func TestPayloadMarshalJSON(t *testing.T) {
	payload, err := Transform(todoForm())
	assert.NilError(t, err)

	data, err := json.Marshal(payload)
	assert.NilError(t, err)

	assert.Assert(t, is.Equal(`{"create":{"tasks":[{"completed":false,"name":"Potatoes"}],"todos":[]},`+
		`"update":{"tasks":[{"completed":true,"name":"Eggs","taskId":"3"}],"todos":[{"description":"...","name":"Shopping","todoId":"12"}]},`+
		`"remove":{"tasks":["4"],"todos":[]}}`, string(data)))
}
