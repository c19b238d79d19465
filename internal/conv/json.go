package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert decodes in into the value pointed to by outPtr. Values already
// assignable are copied as is; anything else goes through JSON, which is how
// MCP tool arguments arrive. A nil input leaves the destination untouched.
func Convert(in any, outPtr any) error {
	dest := reflect.ValueOf(outPtr)
	if outPtr == nil || dest.Kind() != reflect.Ptr || dest.IsNil() {
		return fmt.Errorf("conv: destination must be a non-nil pointer, got %T", outPtr)
	}
	if in == nil {
		return nil
	}
	if src := reflect.ValueOf(in); src.Type().AssignableTo(dest.Elem().Type()) {
		dest.Elem().Set(src)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv: encode %T: %w", in, err)
	}
	if err = json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv: decode into %T: %w", outPtr, err)
	}
	return nil
}

// ToMap renders in as a generic JSON object.
func ToMap(in any) (map[string]interface{}, error) {
	var ret map[string]interface{}
	if err := Convert(in, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Clone returns a deep copy of a JSON-shaped value. Values that cannot be
// encoded are a programming error and panic.
func Clone[T any](src *T) *T {
	if src == nil {
		return nil
	}
	data, err := json.Marshal(src)
	if err != nil {
		panic(fmt.Sprintf("conv: clone %T: %v", src, err))
	}
	dest := new(T)
	if err = json.Unmarshal(data, dest); err != nil {
		panic(fmt.Sprintf("conv: clone %T: %v", src, err))
	}
	return dest
}
