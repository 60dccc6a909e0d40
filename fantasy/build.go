package fantasy

import (
	"reflect"
	"strings"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// Build materializes a typed entity from canonical unpacked data. Declared
// fields are decoded through the struct's json tags; canonical keys with no
// matching tag are preserved untyped on the entity's Extra map, recursively
// for nested entities. Declared fields absent from the input simply stay
// zero-valued.
func Build[T any](canonical any) (*T, error) {
	encoded, err := sonic.Marshal(canonical)
	if err != nil {
		return nil, crerr.Wrap(err, "encode canonical data")
	}
	out := new(T)
	if err := sonic.Unmarshal(encoded, out); err != nil {
		return nil, crerr.Wrap(err, "decode entity")
	}
	if m, ok := canonical.(map[string]any); ok {
		value := reflect.ValueOf(out).Elem()
		if value.Kind() == reflect.Struct {
			attachExtra(value, m)
		}
	}
	return out, nil
}

// BuildList materializes a typed slice from a canonical sequence.
func BuildList[T any](seq []any) ([]T, error) {
	out := make([]T, 0, len(seq))
	for _, item := range seq {
		built, err := Build[T](item)
		if err != nil {
			return nil, err
		}
		out = append(out, *built)
	}
	return out, nil
}

type structFields struct {
	byTag      map[string]int
	extraIndex int
}

var (
	fieldCacheMu sync.Mutex
	fieldCache   = map[reflect.Type]structFields{}
)

func fieldsOf(t reflect.Type) structFields {
	fieldCacheMu.Lock()
	defer fieldCacheMu.Unlock()

	if cached, ok := fieldCache[t]; ok {
		return cached
	}

	info := structFields{
		byTag:      make(map[string]int, t.NumField()),
		extraIndex: -1,
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == "-" || tag == "" {
			if field.Name == "Extra" && field.Type == reflect.TypeOf(map[string]any(nil)) {
				info.extraIndex = i
			}
			continue
		}
		info.byTag[tag] = i
	}
	fieldCache[t] = info
	return info
}

func attachExtra(v reflect.Value, canonical map[string]any) {
	info := fieldsOf(v.Type())

	var extras map[string]any
	for key, raw := range canonical {
		index, declared := info.byTag[key]
		if !declared {
			if extras == nil {
				extras = make(map[string]any)
			}
			extras[key] = raw
			continue
		}
		attachExtraField(v.Field(index), raw)
	}

	if info.extraIndex >= 0 && len(extras) > 0 {
		v.Field(info.extraIndex).Set(reflect.ValueOf(extras))
	}
}

func attachExtraField(field reflect.Value, raw any) {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() || field.Elem().Kind() != reflect.Struct {
			return
		}
		if sub, ok := raw.(map[string]any); ok {
			attachExtra(field.Elem(), sub)
		}
	case reflect.Struct:
		if sub, ok := raw.(map[string]any); ok {
			attachExtra(field, sub)
		}
	case reflect.Slice:
		elems, ok := raw.([]any)
		if !ok {
			return
		}
		for i := 0; i < field.Len() && i < len(elems); i++ {
			element := field.Index(i)
			if element.Kind() == reflect.Pointer {
				if element.IsNil() {
					continue
				}
				element = element.Elem()
			}
			if element.Kind() != reflect.Struct {
				continue
			}
			if sub, ok := elems[i].(map[string]any); ok {
				attachExtra(element, sub)
			}
		}
	}
}
