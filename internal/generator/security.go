package generator

import "github.com/svctools/svc2openapi/internal/openapi"

// resolveSecurity applies the two per-operation security rules in order: an
// authorizer link establishes the requirement, and an explicit documentation
// security list replaces it when at least one listed scheme is declared. No
// match on either path leaves the operation without a security field.
func (g *Generator) resolveSecurity(reg *Registry, fnName, authorizer string, declared []string) []openapi.SecurityRequirement {
	var out []openapi.SecurityRequirement

	if authorizer != "" {
		if name, ok := reg.authorizer[authorizer]; ok {
			out = []openapi.SecurityRequirement{{name: {}}}
		} else {
			g.log.Warn().
				Str("function", fnName).
				Str("authorizer", authorizer).
				Msg("no security definition linked to authorizer")
		}
	}

	if len(declared) > 0 {
		var replacement []openapi.SecurityRequirement
		for _, name := range declared {
			if !reg.HasScheme(name) {
				g.log.Warn().
					Str("function", fnName).
					Str("scheme", name).
					Msg("security scheme not declared; omitting requirement")
				continue
			}
			replacement = append(replacement, openapi.SecurityRequirement{name: {}})
		}
		if len(replacement) > 0 {
			out = replacement
		}
	}

	return out
}
