package schema

import (
	"strings"

	"github.com/go-openapi/jsonpointer"
)

// Dereferencer inlines internal $ref entries in a JSON-Schema document.
type Dereferencer interface {
	Dereference(s map[string]any) (map[string]any, error)
}

// RefResolver resolves local "#/..." references against the schema's own
// root. External references, references that do not resolve, and references
// that participate in a cycle are left intact rather than failing.
type RefResolver struct{}

var _ Dereferencer = RefResolver{}

func (RefResolver) Dereference(s map[string]any) (map[string]any, error) {
	if s == nil {
		return nil, nil
	}
	resolved, err := resolveNode(s, s, map[string]bool{})
	if err != nil {
		return nil, err
	}
	out, _ := resolved.(map[string]any)
	return out, nil
}

func resolveNode(node any, root map[string]any, seen map[string]bool) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		if ref, ok := v["$ref"].(string); ok && strings.HasPrefix(ref, "#") {
			if seen[ref] {
				// Cycle: keep the reference in place.
				return copyShallow(v), nil
			}
			target, ok := resolvePointer(ref, root)
			if !ok {
				return copyShallow(v), nil
			}
			seen[ref] = true
			resolved, err := resolveNode(target, root, seen)
			delete(seen, ref)
			return resolved, err
		}
		out := make(map[string]any, len(v))
		for k, child := range v {
			r, err := resolveNode(child, root, seen)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			r, err := resolveNode(child, root, seen)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}

func resolvePointer(ref string, root map[string]any) (any, bool) {
	raw := strings.TrimPrefix(ref, "#")
	if raw == "" {
		return root, true
	}
	ptr, err := jsonpointer.New(raw)
	if err != nil {
		return nil, false
	}
	value, _, err := ptr.Get(root)
	if err != nil {
		return nil, false
	}
	return value, true
}

func copyShallow(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
