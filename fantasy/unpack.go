package fantasy

import "strconv"

// isIndexedSequence reports whether m is a numeric-string-indexed
// pseudo-list: keys "0".."n-1" with no gaps. Yahoo emits a sibling "count"
// key alongside the indexed items; it is ignored during detection and dropped
// from the resulting sequence.
func isIndexedSequence(m map[string]any) bool {
	n := 0
	for key := range m {
		if key == "count" {
			continue
		}
		if !isDigits(key) {
			return false
		}
		n++
	}
	if n == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if _, ok := m[strconv.Itoa(i)]; !ok {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func sequenceFromIndexed(m map[string]any) []any {
	n := len(m)
	if _, ok := m["count"]; ok {
		n--
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, m[strconv.Itoa(i)])
	}
	return out
}

// flattenOnce expands one level of nested lists. Yahoo wraps entity
// attributes as list-of-list-of-single-key-dicts in several endpoints.
func flattenOnce(items []any) []any {
	flat := make([]any, 0, len(items))
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			flat = append(flat, nested...)
			continue
		}
		flat = append(flat, item)
	}
	return flat
}

// ReformatList merges a list of single-key wrapper dicts into one mapping.
// When a key repeats across elements, the last non-empty value wins; an empty
// value only lands if the key is otherwise absent.
func ReformatList(items []any) map[string]any {
	out := make(map[string]any, len(items))
	for _, item := range flattenOnce(items) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for key, value := range m {
			if isEmptyValue(value) {
				if _, exists := out[key]; !exists {
					out[key] = value
				}
				continue
			}
			out[key] = value
		}
	}
	return out
}

func isEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case map[string]any:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

// Unpack canonicalizes a raw decoded JSON subtree for the given target
// entity. An empty entity name means untyped passthrough: only the generic
// pseudo-list normalization applies. The input is never mutated.
func Unpack(entityName string, raw any) any {
	switch typed := raw.(type) {
	case map[string]any:
		if isIndexedSequence(typed) {
			seq := sequenceFromIndexed(typed)
			out := make([]any, len(seq))
			for i, item := range seq {
				out[i] = Unpack(entityName, item)
			}
			return out
		}
		return unpackObject(entityName, typed)
	case []any:
		// Wrapper list addressed as a scalar target: merge, then recurse.
		return unpackObject(entityName, ReformatList(typed))
	default:
		return raw
	}
}

func unpackObject(entityName string, m map[string]any) map[string]any {
	schema := Schema(entityName)
	out := make(map[string]any, len(m))
	for key, value := range m {
		spec, declared := schema[key]
		if !declared {
			out[key] = normalize(value)
			continue
		}
		switch spec.Kind {
		case KindEntity:
			out[key] = Unpack(spec.Entity, value)
		case KindEntityList:
			out[key] = unpackCollection(spec, value)
		default:
			out[key] = normalize(value)
		}
	}
	return out
}

// unpackCollection reduces any of Yahoo's collection encodings to a sequence
// of bare elements, unwrapping each element's single-key wrapper and
// recursing with the singular entity schema.
func unpackCollection(spec FieldSpec, raw any) []any {
	var items []any
	switch typed := raw.(type) {
	case nil:
		return nil
	case []any:
		items = flattenOnce(typed)
	case map[string]any:
		if isIndexedSequence(typed) {
			items = sequenceFromIndexed(typed)
		} else {
			items = []any{typed}
		}
	default:
		items = []any{typed}
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		bare := item
		if m, ok := item.(map[string]any); ok && len(m) == 1 {
			if inner, wrapped := m[spec.Elem]; wrapped {
				bare = inner
			}
		}
		if spec.Entity == "" {
			out = append(out, normalize(bare))
			continue
		}
		out = append(out, Unpack(spec.Entity, bare))
	}
	return out
}

// normalize applies the generic list-vs-object disambiguation to untyped
// values without consulting any schema.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		if isIndexedSequence(typed) {
			seq := sequenceFromIndexed(typed)
			out := make([]any, len(seq))
			for i, item := range seq {
				out[i] = normalize(item)
			}
			return out
		}
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}
