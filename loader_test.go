package ucr

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const todoFormYAML = `todos:
  todoId: !id "12"
  name: !update Shopping
  description: !update "..."
tasks:
  - taskId: !id "3"
    name: !update Eggs
    completed: !update true
  - taskId: !id "4"
    name: !remove Ham
    completed: false
  - taskId: !create ""
    name: !create Potatoes
    completed: !create false
`

func TestLoad(t *testing.T) {
	provider := NewFSFileProvider(fstest.MapFS{
		"todo.ucr.yaml": &fstest.MapFile{
			Data: []byte(todoFormYAML),
		},
	})

	input, err := Load(provider)
	require.NoError(t, err)

	require.Equal(t, todoForm(), input)
}

func TestLoadExplicitFieldForm(t *testing.T) {
	input, err := LoadBytes([]byte(`{
  "todos": {
    "todoId": {"action": "ID", "value": "12"},
    "name": {"action": "UPDATE", "value": "Shopping"},
    "done": {"action": "", "value": false},
    "notes": {"value": null}
  },
  "tasks": []
}`))
	require.NoError(t, err)

	require.Equal(t, FormInput{
		"todos": SingleObject(Object{
			"todoId": ID("12"),
			"name":   Update("Shopping"),
			"done":   None(false),
			"notes":  None(nil),
		}),
		"tasks": ManyObjects(),
	}, input)
}

func TestLoadUntaggedValues(t *testing.T) {
	input, err := LoadBytes([]byte(`users:
  user_id: !id 1
  name: "John"
  active: true
`))
	require.NoError(t, err)

	require.Equal(t, FormInput{
		"users": SingleObject(Object{
			"user_id": ID(uint64(1)),
			"name":    None("John"),
			"active":  None(true),
		}),
	}, input)
}

func TestLoadValueParser(t *testing.T) {
	input, err := LoadBytes([]byte(`users:
  user_id: {action: ID, value: !upper "abc"}
  name: !update "John"
`), WithLoadValueParser(TaggedValueParserFunc(upperValueParser)))
	require.NoError(t, err)

	require.Equal(t, FormInput{
		"users": SingleObject(Object{
			"user_id": ID("ABC"),
			"name":    Update("John"),
		}),
	}, input)
}

func TestLoad2Files(t *testing.T) {
	provider := NewFSFileProvider(fstest.MapFS{
		"01-todos.ucr.yaml": &fstest.MapFile{
			Data: []byte(`todos:
  todoId: !id "12"
  name: !update Shopping
`),
		},
		"inner/02-tasks.ucr.json": &fstest.MapFile{
			Data: []byte(`{"tasks": [{"name": {"action": "CREATE", "value": "Eggs"}}]}`),
		},
		"ignored.yaml": &fstest.MapFile{
			Data: []byte(`other: 1`),
		},
	})

	input, err := Load(provider)
	require.NoError(t, err)

	require.Equal(t, FormInput{
		"todos": SingleObject(Object{
			"todoId": ID("12"),
			"name":   Update("Shopping"),
		}),
		"tasks": ManyObjects(Object{
			"name": Create("Eggs"),
		}),
	}, input)
}

func TestLoadEmptyFile(t *testing.T) {
	input, err := LoadBytes([]byte("   \n"))
	require.NoError(t, err)
	require.Empty(t, input)
}

func TestLoadDuplicatedTable(t *testing.T) {
	_, err := Load(NewStringFileProvider([]string{
		`todos: {todoId: !id "1"}`,
		`todos: {todoId: !id "2"}`,
	}))
	require.Error(t, err)

	var parseErr ParseError
	require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T", err)
	require.Contains(t, parseErr.ErrorMessage, "defined more than once")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		malformed bool
		is        error
	}{
		{
			name:      "scalar table",
			data:      `todos: 1`,
			malformed: true,
		},
		{
			name:      "null table",
			data:      `todos:`,
			malformed: true,
		},
		{
			name: "scalar row",
			data: `tasks:
  - 1
`,
			malformed: true,
		},
		{
			name: "sequence field value",
			data: `todos:
  name: !update [1, 2]
`,
			malformed: true,
		},
		{
			name: "mapping field value",
			data: `todos:
  name: {action: UPDATE, value: {a: 1}}
`,
			malformed: true,
		},
		{
			name: "invalid action",
			data: `todos:
  name: {action: DELETE, value: 1}
`,
			is: ErrInvalidAction,
		},
		{
			name: "invalid explicit key",
			data: `todos:
  name: {action: UPDATE, val: 1}
`,
		},
		{
			name:      "sequence document",
			data:      `- a: 1`,
			malformed: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(test.data))
			require.Error(t, err)

			var parseErr ParseError
			require.True(t, errors.As(err, &parseErr), "expected ParseError, got %T: %v", err, err)

			if test.malformed {
				var malformedErr *MalformedInputError
				require.True(t, errors.As(err, &malformedErr), "expected MalformedInputError, got %v", err)
				require.ErrorIs(t, err, ErrMalformedInput)
			}
			if test.is != nil {
				require.ErrorIs(t, err, test.is)
			}
		})
	}
}
