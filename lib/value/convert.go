package value

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// FromGo converts a plain Go value into a Value tree. Supported inputs are
// nil, bool, all integer and float types, string, time.Time, funcs,
// []any (and typed slices), map[string]any (and typed string-keyed maps),
// and anything that already is a Value.
//
// Map iteration order in Go is randomized, so map keys are sorted to keep
// the conversion deterministic. Callers that need a specific key order must
// build an Object directly via NewObject().Set(...).
func FromGo(v any) (Value, error) {
	if v == nil {
		return Null{}, nil
	}

	switch t := v.(type) {
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case time.Time:
		return Time(t), nil
	case float64:
		return Number(t), nil
	case float32:
		return Number(t), nil
	case int:
		return Number(t), nil
	case int8:
		return Number(t), nil
	case int16:
		return Number(t), nil
	case int32:
		return Number(t), nil
	case int64:
		return Number(t), nil
	case uint:
		return Number(t), nil
	case uint8:
		return Number(t), nil
	case uint16:
		return Number(t), nil
	case uint32:
		return Number(t), nil
	case uint64:
		return Number(t), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return Func(rv.Type().String()), nil
	case reflect.Slice, reflect.Array:
		arr := NewArray()
		for i := 0; i < rv.Len(); i++ {
			item, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			arr.Append(item)
		}
		return arr, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("value: unsupported map key type %s", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			member, err := FromGo(rv.MapIndex(reflect.ValueOf(k)).Interface())
			if err != nil {
				return nil, err
			}
			obj.Set(k, member)
		}
		return obj, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return FromGo(rv.Elem().Interface())
	default:
		return nil, fmt.Errorf("value: unsupported Go type %T", v)
	}
}
