package schema

// Sanitize returns a copy of s without the top-level $schema meta-key.
// JSON-Schema documents carry it, but it has no meaning inside an OpenAPI
// components entry or a parameter schema.
func Sanitize(s map[string]any) map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s))
	for k, v := range s {
		if k == "$schema" {
			continue
		}
		out[k] = v
	}
	return out
}
