package generator

import (
	"fmt"

	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/openapi"
	"github.com/svctools/svc2openapi/internal/schema"
)

// Registry is the snapshot Parse produces: resolved model schemas, projected
// security schemes, and the authorizer linkage needed to resolve
// per-operation security. ReadFunctions composes operations against it; both
// registries are append-only during Parse and read-only afterwards.
type Registry struct {
	schemas    map[string]map[string]any
	schemes    map[string]*openapi.SecurityScheme
	authorizer map[string]string // authorizerName -> scheme name
	models     map[string]config.Model
}

// Model returns the declared model config for a resolved model name.
func (r *Registry) Model(name string) (config.Model, bool) {
	m, ok := r.models[name]
	return m, ok
}

// HasScheme reports whether a security scheme was declared under name.
func (r *Registry) HasScheme(name string) bool {
	_, ok := r.schemes[name]
	return ok
}

// Parse seeds the document skeleton: info (with a generated version when the
// config omits one), servers, and the security-scheme registry. It then
// resolves every declared model into components.schemas and returns the
// registry snapshot ReadFunctions requires.
func (g *Generator) Parse() (*Registry, error) {
	info := openapi.Info{
		Title:       g.cfg.Title,
		Description: g.cfg.Description,
		Version:     g.cfg.Version,
	}
	if info.Version == "" {
		info.Version = g.newVersion()
	}
	g.doc.Info = info

	for _, s := range g.cfg.Servers {
		g.doc.Servers = append(g.doc.Servers, openapi.Server{
			URL:         s.URL,
			Description: s.Description,
			Variables:   s.Variables,
		})
	}

	reg := &Registry{
		schemas:    g.doc.Components.Schemas,
		schemes:    g.doc.Components.SecuritySchemes,
		authorizer: map[string]string{},
		models:     map[string]config.Model{},
	}

	for _, def := range g.cfg.Security {
		if def.Name == "" {
			continue
		}
		// authorizerName is internal linkage, not part of the public scheme.
		reg.schemes[def.Name] = &openapi.SecurityScheme{
			Type:             def.Type,
			Description:      def.Description,
			Name:             def.KeyName,
			In:               def.In,
			Scheme:           def.Scheme,
			BearerFormat:     def.BearerFormat,
			OpenIDConnectURL: def.OpenIDConnectURL,
			Flows:            def.Flows,
		}
		if def.AuthorizerName != "" {
			reg.authorizer[def.AuthorizerName] = def.Name
		}
	}

	for _, m := range g.cfg.Models {
		resolved, err := g.resolveModel(m)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		reg.schemas[m.Name] = resolved
		reg.models[m.Name] = m
	}

	return reg, nil
}

// resolveModel produces the model's sanitized schema: the literal schema when
// declared, else the derived one, in both cases dereferenced and stripped of
// the $schema meta-key. Models declaring neither resolve to nothing.
func (g *Generator) resolveModel(m config.Model) (map[string]any, error) {
	s := m.Schema
	if s == nil {
		if m.SchemaFrom == nil {
			return nil, nil
		}
		derived, err := g.deriver.Derive(m.SchemaFrom.File, m.SchemaFrom.Type, schema.DeriveOptions{
			Required:     true,
			NoExtraProps: true,
		})
		if err != nil {
			return nil, &Error{
				Code:    SchemaError,
				Model:   m.Name,
				Message: fmt.Sprintf("model %s: %v", m.Name, err),
				Cause:   err,
			}
		}
		s = derived
	}

	inlined, err := g.deref.Dereference(s)
	if err != nil {
		return nil, &Error{
			Code:    SchemaError,
			Model:   m.Name,
			Message: fmt.Sprintf("model %s: dereference: %v", m.Name, err),
			Cause:   err,
		}
	}
	return schema.Sanitize(inlined), nil
}
