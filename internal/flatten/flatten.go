// Package flatten converts nested JSON-like values to and from dotted-path
// leaf maps. Objects are decomposed member by member; arrays and scalars are
// leaves and are carried whole.
package flatten

import (
	"sort"
	"strings"
)

// Separator joins nested object member names into a flat key.
const Separator = "."

// Flatten walks v depth first and returns a map from dotted leaf path to the
// (cloned) leaf value, plus the keys in traversal order. Object members are
// visited in sorted key order at every level, so the key list is deterministic
// for any input. A non-object root produces the single empty-string key.
func Flatten(v any) (map[string]any, []string) {
	flat := make(map[string]any)
	keys := make([]string, 0)
	flattenInto(v, "", flat, &keys)
	return flat, keys
}

func flattenInto(v any, prefix string, flat map[string]any, keys *[]string) {
	obj, ok := v.(map[string]any)
	if !ok {
		flat[prefix] = Clone(v)
		*keys = append(*keys, prefix)
		return
	}
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child := name
		if prefix != "" {
			child = prefix + Separator + name
		}
		flattenInto(obj[name], child, flat, keys)
	}
}

// Unflatten rebuilds a nested value from a flat map, processing keys in sorted
// order. When a scalar and an object claim the same dotted path the later
// write wins (the intermediate value is replaced by an object, or the object
// by the scalar, depending on key order). A flat map holding only the
// empty-string key unwraps back to the bare leaf.
func Unflatten(flat map[string]any) any {
	if len(flat) == 1 {
		if v, ok := flat[""]; ok {
			return Clone(v)
		}
	}
	result := make(map[string]any)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		Insert(result, k, flat[k])
	}
	return result
}

// Insert places value into dst at the nested position named by the dotted
// key, creating intermediate objects as needed. Existing non-object values on
// the path are replaced.
func Insert(dst map[string]any, key string, value any) {
	parts := strings.Split(key, Separator)
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = Clone(value)
			return
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// Clone deep-copies a JSON-like value. Scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}
