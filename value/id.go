package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rrgmc/ucr"
)

// IDString is a [ucr.IDConverter] that converts ids to their string representation.
func IDString() ucr.IDConverter {
	return ucr.IDConverterFunc(func(table string, fieldName string, value any) (any, error) {
		switch vv := value.(type) {
		case string:
			return vv, nil
		case nil:
			return nil, fmt.Errorf("id value is nil")
		default:
			return fmt.Sprint(vv), nil
		}
	})
}

// IDInt64 is a [ucr.IDConverter] that converts ids to int64.
func IDInt64() ucr.IDConverter {
	return ucr.IDConverterFunc(func(table string, fieldName string, value any) (any, error) {
		switch vv := value.(type) {
		case int64:
			return vv, nil
		case int:
			return int64(vv), nil
		case int32:
			return int64(vv), nil
		case uint64:
			if vv > uint64(1<<63-1) {
				return nil, fmt.Errorf("id value %d overflows int64", vv)
			}
			return int64(vv), nil
		case float64:
			if vv != float64(int64(vv)) {
				return nil, fmt.Errorf("id value %v is not an integer", vv)
			}
			return int64(vv), nil
		case string:
			return strconv.ParseInt(strings.TrimSpace(vv), 10, 64)
		default:
			return nil, fmt.Errorf("cannot convert %T to int64", value)
		}
	})
}

// IDConverterByName returns an id converter by name: "string", "int64" or "uuid".
// An empty name returns nil, meaning ids are passed through unchanged.
func IDConverterByName(name string) (ucr.IDConverter, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return nil, nil
	case "string":
		return IDString(), nil
	case "int64", "int":
		return IDInt64(), nil
	case "uuid":
		return IDUUID(), nil
	default:
		return nil, fmt.Errorf("unknown id converter '%s'", name)
	}
}
