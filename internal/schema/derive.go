package schema

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DeriveOptions controls how a source type is projected into a model schema.
type DeriveOptions struct {
	// Required marks every declared property as required.
	Required bool
	// NoExtraProps forbids properties the schema does not declare.
	NoExtraProps bool
}

// Deriver turns a source type declaration into a JSON-Schema document.
type Deriver interface {
	Derive(file, typeName string, opts DeriveOptions) (map[string]any, error)
}

// DocDeriver derives a model schema from a JSON-Schema document on disk
// (JSON or YAML). typeName selects an entry under the document's
// definitions/$defs; when empty the document root is used. Sibling
// definitions are kept on the result so local references still resolve when
// the schema is dereferenced afterwards.
type DocDeriver struct{}

var _ Deriver = DocDeriver{}

func (DocDeriver) Derive(file, typeName string, opts DeriveOptions) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("derive: read %s: %w", file, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("derive: parse %s: %w", file, err)
	}

	target := doc
	if typeName != "" {
		defs, ok := doc["definitions"].(map[string]any)
		if !ok {
			defs, ok = doc["$defs"].(map[string]any)
		}
		if !ok {
			return nil, fmt.Errorf("derive: %s declares no definitions, cannot select type %q", file, typeName)
		}
		entry, ok := defs[typeName].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("derive: type %q not found in %s", typeName, file)
		}
		target = make(map[string]any, len(entry)+1)
		for k, v := range entry {
			target[k] = v
		}
		if _, exists := target["definitions"]; !exists {
			target["definitions"] = defs
		}
	}

	applyOptions(target, opts)
	return target, nil
}

// applyOptions walks the schema and applies the derive options to every
// object subschema that declares properties.
func applyOptions(node any, opts DeriveOptions) {
	switch v := node.(type) {
	case map[string]any:
		if props, ok := v["properties"].(map[string]any); ok && len(props) > 0 {
			if opts.Required {
				names := make([]string, 0, len(props))
				for name := range props {
					names = append(names, name)
				}
				sort.Strings(names)
				required := make([]any, len(names))
				for i, name := range names {
					required[i] = name
				}
				v["required"] = required
			}
			if opts.NoExtraProps {
				if _, set := v["additionalProperties"]; !set {
					v["additionalProperties"] = false
				}
			}
		}
		for _, child := range v {
			applyOptions(child, opts)
		}
	case []any:
		for _, child := range v {
			applyOptions(child, opts)
		}
	}
}
