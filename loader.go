package ucr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Load loads form documents from a [FileProvider] into a FormInput.
//
// Each document is a mapping of table name to either a mapping (a single object) or a sequence of mappings
// (many objects). Field values are tagged with the YAML tags "!create", "!update", "!remove" and "!id", or
// use the explicit form "{action: UPDATE, value: x}". Untagged values are loaded with [ActionNone].
// A table may be defined only once across all files.
func Load(fileProvider FileProvider, options ...LoadOption) (FormInput, error) {
	l := &loader{
		input: FormInput{},
	}
	for _, opt := range options {
		opt.apply(l)
	}
	err := l.load(fileProvider)
	if err != nil {
		return nil, err
	}
	return l.input, nil
}

// LoadBytes loads a single form document.
func LoadBytes(data []byte, options ...LoadOption) (FormInput, error) {
	return Load(NewStringFileProvider([]string{string(data)}), options...)
}

// WithLoadValueParser adds parsers for custom YAML tags in field values.
func WithLoadValueParser(parsers ...TaggedValueParser) LoadOption {
	return fnLoadOption(func(l *loader) {
		l.valueParsers = append(l.valueParsers, parsers...)
	})
}

// TaggedValueParser is used to parse YAML tag values.
type TaggedValueParser interface {
	ParseValue(tag *ast.TagNode) (bool, any, error)
}

// TaggedValueParserFunc is a func adapter for TaggedValueParser
type TaggedValueParserFunc func(tag *ast.TagNode) (bool, any, error)

func (p TaggedValueParserFunc) ParseValue(tag *ast.TagNode) (bool, any, error) {
	return p(tag)
}

var actionTags = map[string]Action{
	"!create": ActionCreate,
	"!update": ActionUpdate,
	"!remove": ActionRemove,
	"!id":     ActionID,
}

type loader struct {
	input        FormInput
	valueParsers []TaggedValueParser
}

func (l *loader) load(fileProvider FileProvider) error {
	return fileProvider.Load(func(info FileInfo) error {
		return l.loadFile(info.File)
	})
}

func (l *loader) loadFile(file io.Reader) error {
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	fileParser, err := parser.ParseBytes(data, 0)
	if err != nil {
		return err
	}

	for _, doc := range fileParser.Docs {
		if doc.Body == nil {
			continue
		}
		err := l.loadDoc(doc.Body)
		if err != nil {
			return err
		}
	}

	return nil
}

func (l *loader) loadDoc(node ast.Node) error {
	switch n := node.(type) {
	case *ast.MappingValueNode:
		tableName, err := getStringNode(n.Key)
		if err != nil {
			return err
		}
		err = l.loadTable(tableName, n.Value)
		if err != nil {
			return err
		}
	case *ast.MappingNode:
		for _, value := range n.Values {
			err := l.loadDoc(value)
			if err != nil {
				return err
			}
		}
	default:
		return malformedNodeError("", fmt.Sprintf("invalid document node '%s'", n.Type().String()), node)
	}

	return nil
}

func (l *loader) loadTable(tableName string, node ast.Node) error {
	if _, ok := l.input[tableName]; ok {
		return NewParseError(fmt.Sprintf("table '%s' defined more than once", tableName),
			node.GetPath(), node.GetToken().Position)
	}

	switch n := node.(type) {
	case *ast.MappingNode, *ast.MappingValueNode:
		object, err := l.loadObject(tableName, n)
		if err != nil {
			return err
		}
		l.input[tableName] = SingleObject(object)
	case *ast.SequenceNode:
		var objects []Object
		for _, item := range n.Values {
			object, err := l.loadObject(tableName, item)
			if err != nil {
				return err
			}
			objects = append(objects, object)
		}
		l.input[tableName] = ManyObjects(objects...)
	default:
		return malformedNodeError(tableName,
			fmt.Sprintf("table must be an object or a list of objects, got '%s'", node.Type().String()), node)
	}

	return nil
}

func (l *loader) loadObject(tableName string, node ast.Node) (Object, error) {
	values, ok := mappingValues(node)
	if !ok {
		return nil, malformedNodeError(tableName,
			fmt.Sprintf("table row must be an object, got '%s'", node.Type().String()), node)
	}

	object := Object{}
	for _, value := range values {
		fieldName, err := getStringNode(value.Key)
		if err != nil {
			return nil, err
		}
		if _, ok := object[fieldName]; ok {
			return nil, NewParseError(fmt.Sprintf("duplicated field '%s'", fieldName),
				value.GetPath(), value.GetToken().Position)
		}
		field, err := l.loadField(tableName, value.Value)
		if err != nil {
			return nil, err
		}
		object[fieldName] = field
	}
	return object, nil
}

func (l *loader) loadField(tableName string, node ast.Node) (Field, error) {
	switch n := node.(type) {
	case *ast.TagNode:
		if action, ok := actionTags[n.Start.Value]; ok {
			value, err := l.loadFieldValue(tableName, n.Value)
			if err != nil {
				return Field{}, err
			}
			return Field{Action: action, Value: value}, nil
		}
	case *ast.MappingNode, *ast.MappingValueNode:
		return l.loadExplicitField(tableName, n)
	}

	value, err := l.loadFieldValue(tableName, node)
	if err != nil {
		return Field{}, err
	}
	return None(value), nil
}

// loadExplicitField loads the "{action: UPDATE, value: x}" field form.
func (l *loader) loadExplicitField(tableName string, node ast.Node) (Field, error) {
	values, _ := mappingValues(node)

	var field Field
	for _, value := range values {
		key, err := getStringNode(value.Key)
		if err != nil {
			return Field{}, err
		}
		switch key {
		case "action":
			var actionName string
			if _, isNull := value.Value.(*ast.NullNode); !isNull {
				actionName, err = getStringNode(value.Value)
				if err != nil {
					return Field{}, err
				}
			}
			field.Action, err = ParseAction(actionName)
			if err != nil {
				return Field{}, NewParseErrorWrap(err, value.GetPath(), value.GetToken().Position)
			}
		case "value":
			field.Value, err = l.loadFieldValue(tableName, value.Value)
			if err != nil {
				return Field{}, err
			}
		default:
			return Field{}, NewParseError(fmt.Sprintf("invalid field key '%s'", key),
				value.GetPath(), value.GetToken().Position)
		}
	}
	return field, nil
}

func (l *loader) loadFieldValue(tableName string, node ast.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	switch n := node.(type) {
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return nil, malformedNodeError(tableName,
			fmt.Sprintf("field value must be a scalar, got '%s'", node.Type().String()), node)
	case *ast.TagNode:
		for _, valueParser := range l.valueParsers {
			ok, value, err := valueParser.ParseValue(n)
			if err != nil {
				return nil, NewParseErrorWrap(err, node.GetPath(), node.GetToken().Position)
			}
			if ok {
				return value, nil
			}
		}
	}

	var value any
	err := yaml.NodeToValue(node, &value)
	if err != nil {
		return nil, NewParseErrorWrap(err, node.GetPath(), node.GetToken().Position)
	}
	return value, nil
}

// mappingValues returns the key/values of a mapping node. A mapping with a single key may be parsed as a
// single MappingValueNode.
func mappingValues(node ast.Node) ([]*ast.MappingValueNode, bool) {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values, true
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, true
	default:
		return nil, false
	}
}

func malformedNodeError(tableName string, reason string, node ast.Node) error {
	return NewParseErrorWrap(&MalformedInputError{Table: tableName, Reason: reason},
		node.GetPath(), node.GetToken().Position)
}
