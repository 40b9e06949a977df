package layer

import (
	"reflect"
	"sort"
	"strings"
)

// Clone returns a deep copy of m. A nil map yields an empty one.
func Clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Merge writes src over dst and returns dst, allocating it when nil.
// Only maps merge recursively; any other value from src replaces the one
// in dst. dst never shares nested values with src.
func Merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if below, ok := dst[k].(map[string]any); ok {
				dst[k] = Merge(below, sub)
				continue
			}
		}
		dst[k] = cloneValue(v)
	}
	return dst
}

// Lookup returns the value at a dotted path such as
// "resize.border.enabled".
func Lookup(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, key := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// Diff returns the sorted dotted paths of every leaf whose value differs
// between before and after, including leaves present on one side only.
func Diff(before, after map[string]any) []string {
	old, cur := leaves(before), leaves(after)

	var paths []string
	for p, v := range cur {
		if was, ok := old[p]; !ok || !reflect.DeepEqual(was, v) {
			paths = append(paths, p)
		}
	}
	for p := range old {
		if _, ok := cur[p]; !ok {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

// leaves flattens m into dotted paths. Empty maps have no leaves.
func leaves(m map[string]any) map[string]any {
	out := make(map[string]any)
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			if prefix != "" {
				k = prefix + "." + k
			}
			if sub, ok := v.(map[string]any); ok {
				walk(k, sub)
				continue
			}
			out[k] = v
		}
	}
	walk("", m)
	return out
}
