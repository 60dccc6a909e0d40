package fantasy

import (
	"fmt"
	"strconv"
	"strings"
)

// PathKey is one component of a key-path: either a single key or a dual key
// addressing two sibling fields at the same reformatted index.
type PathKey struct {
	key string
	alt string
}

// Key builds a single-key path component.
func Key(key string) PathKey {
	return PathKey{key: key}
}

// DualKey builds a component that extracts two sibling keys at once, e.g.
// "team_points" together with "team_projected_points".
func DualKey(first, second string) PathKey {
	return PathKey{key: first, alt: second}
}

func (p PathKey) IsDual() bool {
	return p.alt != ""
}

// Primary returns the first (or only) key of the component.
func (p PathKey) Primary() string {
	return p.key
}

// Secondary returns the second key of a dual component, empty otherwise.
func (p PathKey) Secondary() string {
	return p.alt
}

func (p PathKey) String() string {
	if p.IsDual() {
		return p.key + "|" + p.alt
	}
	return p.key
}

// KeyPath is the ordered list of components used to descend from the
// envelope root to the subtree of interest.
type KeyPath []PathKey

// Path is shorthand for building a KeyPath from single keys.
func Path(keys ...string) KeyPath {
	out := make(KeyPath, 0, len(keys))
	for _, key := range keys {
		out = append(out, Key(key))
	}
	return out
}

func (kp KeyPath) String() string {
	parts := make([]string, 0, len(kp))
	for _, component := range kp {
		parts = append(parts, component.String())
	}
	return strings.Join(parts, ".")
}

// Last returns the final component, or the zero PathKey for an empty path.
func (kp KeyPath) Last() PathKey {
	if len(kp) == 0 {
		return PathKey{}
	}
	return kp[len(kp)-1]
}

// NotFoundError reports that a requested key-path or envelope field is
// absent from an otherwise successful response. The orchestrator attaches
// the request URL and decides contextually whether the condition is fatal,
// the natural end of a paginated collection, or a per-item retry trigger.
type NotFoundError struct {
	URL     string
	KeyPath KeyPath
	Message string
}

func (e *NotFoundError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "data not found"
	}
	if len(e.KeyPath) > 0 {
		msg = fmt.Sprintf("%s (key path: %s)", msg, e.KeyPath)
	}
	if e.URL != "" {
		msg = fmt.Sprintf("%s (url: %s)", msg, e.URL)
	}
	return msg
}

// Navigate descends from root one component at a time, reformatting wrapper
// lists before keyed descent, resolving numeric-string components to sequence
// indices, and materializing dual-key components as a two-key mapping.
func Navigate(root any, path KeyPath) (any, error) {
	current := root
	for depth, component := range path {
		value, err := descend(current, component)
		if err != nil {
			return nil, &NotFoundError{
				KeyPath: path,
				Message: fmt.Sprintf("no data at %q (component %d of %d)", component, depth+1, len(path)),
			}
		}
		current = value
	}
	if isEmptyValue(current) {
		return nil, &NotFoundError{
			KeyPath: path,
			Message: "no data found when attempting extraction",
		}
	}
	return current, nil
}

func descend(current any, component PathKey) (any, error) {
	switch node := current.(type) {
	case []any:
		if !component.IsDual() && isDigits(component.key) {
			index, _ := strconv.Atoi(component.key)
			if index >= len(node) {
				return nil, errComponentMissing
			}
			return node[index], nil
		}
		return descendMap(ReformatList(node), component)
	case map[string]any:
		return descendMap(node, component)
	default:
		return nil, errComponentMissing
	}
}

func descendMap(node map[string]any, component PathKey) (any, error) {
	if component.IsDual() {
		first, okFirst := node[component.key]
		second, okSecond := node[component.alt]
		if !okFirst || !okSecond {
			return nil, errComponentMissing
		}
		return map[string]any{
			component.key: first,
			component.alt: second,
		}, nil
	}
	value, ok := node[component.key]
	if !ok || value == nil {
		return nil, errComponentMissing
	}
	return value, nil
}

var errComponentMissing = fmt.Errorf("key path component missing")

// ToSequence coerces a navigated collection node into an ordered sequence,
// resolving the pseudo-list encoding when present.
func ToSequence(value any) []any {
	switch typed := value.(type) {
	case []any:
		return flattenOnce(typed)
	case map[string]any:
		if isIndexedSequence(typed) {
			return sequenceFromIndexed(typed)
		}
		return []any{typed}
	case nil:
		return nil
	default:
		return []any{typed}
	}
}

// UnwrapPlural strips each element's single-key wrapper when the collection
// was addressed by a plural key: a sequence of {"team": {...}} becomes a
// sequence of team mappings, in original order.
func UnwrapPlural(seq []any, pluralKey string) []any {
	if !strings.HasSuffix(pluralKey, "s") {
		return seq
	}
	singular := ElementKey(pluralKey)
	out := make([]any, 0, len(seq))
	for _, item := range seq {
		if m, ok := item.(map[string]any); ok && len(m) == 1 {
			if inner, wrapped := m[singular]; wrapped {
				out = append(out, inner)
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
