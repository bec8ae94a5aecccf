package generator

import (
	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/openapi"
	"github.com/svctools/svc2openapi/internal/schema"
)

// parameterSources pairs each location with its documentation field, in
// emission order.
var parameterSources = []struct {
	in     string
	params func(*config.Documentation) []config.Parameter
}{
	{"path", func(d *config.Documentation) []config.Parameter { return d.PathParams }},
	{"query", func(d *config.Documentation) []config.Parameter { return d.QueryParams }},
	{"header", func(d *config.Documentation) []config.Parameter { return d.RequestHeaders }},
	{"cookie", func(d *config.Documentation) []config.Parameter { return d.CookieParams }},
}

// buildParameters derives the operation's parameter list from the four
// location-specific documentation fields: location order first, declaration
// order within each.
func buildParameters(doc *config.Documentation) []*openapi.Parameter {
	params := []*openapi.Parameter{}
	for _, src := range parameterSources {
		for _, in := range src.params(doc) {
			params = append(params, buildParameter(src.in, in))
		}
	}
	return params
}

func buildParameter(location string, in config.Parameter) *openapi.Parameter {
	p := &openapi.Parameter{
		Name:        in.Name,
		In:          location,
		Description: in.Description,
		Required:    in.Required,
	}
	// OpenAPI requires path parameters no matter what the input declares.
	if location == "path" {
		p.Required = true
	}
	if location == "query" {
		p.AllowEmptyValue = boolPtr(in.AllowEmptyValue)
		if in.AllowReserved != nil {
			p.AllowReserved = boolPtr(*in.AllowReserved)
		}
	}
	if in.Deprecated != nil {
		p.Deprecated = boolPtr(*in.Deprecated)
	}
	if in.Style != "" {
		p.Style = in.Style
		if in.Explode != nil {
			p.Explode = boolPtr(*in.Explode)
		} else {
			p.Explode = boolPtr(in.Style == "form")
		}
	}
	if in.Schema != nil {
		p.Schema = schema.Sanitize(in.Schema)
	}
	if in.Examples != nil {
		p.Examples = in.Examples
	}
	if in.Content != nil {
		p.Content = in.Content
	}
	return p
}

func boolPtr(b bool) *bool { return &b }
