package tree

import (
	"fmt"
	"reflect"
	"sort"
)

type float64er interface {
	Float64() (float64, error)
}

// FromAny converts plain Go values (as produced by encoding/json, go-json or
// yaml decoders) into a Value. Go maps carry no order, so their keys are
// sorted; use the source package to keep document order. A nil input is Null.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float64er:
		f, err := t.Float64()
		if err != nil {
			return String(fmt.Sprint(t))
		}
		return Number(f)
	case []any:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = FromAny(e)
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, FromAny(t[k]))
		}
		return o
	case map[any]any:
		keys := make([]string, 0, len(t))
		vals := make(map[string]any, len(t))
		for k, v := range t {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			vals[ks] = v
		}
		sort.Strings(keys)
		o := NewObject()
		for _, k := range keys {
			o.Set(k, FromAny(vals[k]))
		}
		return o
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make(Array, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = FromAny(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		generic := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			generic[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return FromAny(generic)
	case reflect.Pointer:
		if rv.IsNil() {
			return Null{}
		}
		return FromAny(rv.Elem().Interface())
	}
	return String(fmt.Sprint(x))
}

// ToAny converts v into plain Go values: map[string]any, []any, string,
// float64, bool and nil.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ToAny(e)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		t.Range(func(k string, child Value) bool {
			out[k] = ToAny(child)
			return true
		})
		return out
	}
	return nil
}
