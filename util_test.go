package ucr

import (
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// upperValueParser parses "!upper" tags to an uppercase string.
func upperValueParser(tag *ast.TagNode) (bool, any, error) {
	if tag.Start.Value != "!upper" {
		return false, nil, nil
	}
	str, err := getStringNode(tag.Value)
	if err != nil {
		return false, nil, err
	}
	return true, strings.ToUpper(str), nil
}
