package value

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/google/uuid"
	"github.com/rrgmc/ucr"
)

// ValueUUID is a [ucr.TaggedValueParser] to parse "!uuid" tags to [uuid.UUID].
type ValueUUID struct{}

var _ ucr.TaggedValueParser = ValueUUID{}

func (v ValueUUID) ParseValue(tag *ast.TagNode) (bool, any, error) {
	if tag.Start.Value != "!uuid" {
		return false, nil, nil
	}

	str, err := getStringNode(tag.Value)
	if err != nil {
		return false, nil, err
	}

	u, err := uuid.Parse(str)
	if err != nil {
		return false, nil, err
	}

	return true, u, nil
}

// IDUUID is a [ucr.IDConverter] that converts ids to [uuid.UUID].
func IDUUID() ucr.IDConverter {
	return ucr.IDConverterFunc(func(table string, fieldName string, value any) (any, error) {
		switch vv := value.(type) {
		case uuid.UUID:
			return vv, nil
		case string:
			return uuid.Parse(vv)
		case []byte:
			return uuid.ParseBytes(vv)
		default:
			return nil, fmt.Errorf("cannot convert %T to uuid", value)
		}
	})
}
