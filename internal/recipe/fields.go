package recipe

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag binding recipe arguments to Go fields, e.g.
// `pw:"count,optional"`.
const TagName = "pw"

// Field describes one argument accepted by a strategy input struct.
type Field struct {
	Name     string
	Optional bool
	Index    int
	Type     reflect.Type
}

// Fields lists the tagged fields of the struct type t, or of the struct t
// points to. Untagged and unexported fields are ignored.
func Fields(t reflect.Type) ([]Field, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTarget, t)
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get(TagName)
		if tag == "" || tag == "-" {
			continue
		}

		parts := strings.Split(tag, ",")
		f := Field{Name: parts[0], Index: i, Type: sf.Type}
		for _, opt := range parts[1:] {
			if opt == "optional" {
				f.Optional = true
			}
		}
		fields = append(fields, f)
	}
	return fields, nil
}
