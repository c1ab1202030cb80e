package patch

import (
	"fmt"
	"reflect"
)

// cloneShape returns a pointer to a new zero value of target's element type.
func cloneShape(target any) (any, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil, fmt.Errorf("patch target must be a non-nil pointer, got %T", target)
	}
	return reflect.New(v.Elem().Type()).Interface(), nil
}
