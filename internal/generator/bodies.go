package generator

import (
	"fmt"
	"sort"

	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/merge"
	"github.com/svctools/svc2openapi/internal/openapi"
	"github.com/svctools/svc2openapi/internal/schema"
)

// buildRequestBody joins the documented request models against the model
// registry. A documented requestBody without requestModels is a configuration
// defect and aborts the whole generation; an undocumented body contributes
// nothing.
func (g *Generator) buildRequestBody(reg *Registry, fnName string, doc *config.Documentation) (*openapi.RequestBody, error) {
	if doc.RequestModels == nil {
		if doc.RequestBody != nil {
			return nil, &Error{
				Code:     ConfigError,
				Function: fnName,
				Message:  fmt.Sprintf("function %s: documentation declares a request body but no requestModels", fnName),
			}
		}
		return nil, nil
	}

	content, err := g.buildContent(reg, fnName, doc.RequestModels)
	if err != nil {
		return nil, err
	}
	rb := &openapi.RequestBody{Content: content}
	if doc.RequestBody != nil {
		rb.Description = doc.RequestBody.Description
	}
	return rb, nil
}

// buildResponses keys one response object per documented method response,
// with a defaulted description and content wired the same way as request
// bodies.
func (g *Generator) buildResponses(reg *Registry, fnName string, doc *config.Documentation) (openapi.Responses, error) {
	responses := openapi.Responses{}
	for _, mr := range doc.MethodResponses {
		code := string(mr.StatusCode)

		desc := ""
		if mr.ResponseBody != nil {
			desc = mr.ResponseBody.Description
		}
		if desc == "" {
			desc = fmt.Sprintf("Status %s Response", code)
		}

		content, err := g.buildContent(reg, fnName, mr.ResponseModels)
		if err != nil {
			return nil, err
		}
		resp := &openapi.Response{Description: desc, Content: content}

		for _, h := range mr.ResponseHeaders {
			if resp.Headers == nil {
				resp.Headers = map[string]*openapi.Header{}
			}
			hd := &openapi.Header{Description: h.Description}
			if hd.Description == "" {
				hd.Description = h.Name + " header"
			}
			if h.Schema != nil {
				hd.Schema = schema.Sanitize(h.Schema)
			}
			resp.Headers[h.Name] = hd
		}

		responses = merge.Deep(responses, openapi.Responses{code: resp})
	}
	return responses, nil
}

// buildContent wires one media entry per content type whose model name
// resolves in the registry. Unmatched names contribute nothing unless strict
// mode promotes them to errors.
func (g *Generator) buildContent(reg *Registry, fnName string, models map[string]string) (openapi.Content, error) {
	content := openapi.Content{}
	for _, ct := range sortedKeys(models) {
		name := models[ct]
		m, ok := reg.Model(name)
		if !ok {
			if g.strict {
				return nil, &Error{
					Code:     ConfigError,
					Function: fnName,
					Model:    name,
					Message:  fmt.Sprintf("function %s: model %q is not declared", fnName, name),
				}
			}
			g.log.Warn().
				Str("function", fnName).
				Str("model", name).
				Str("contentType", ct).
				Msg("model not declared; omitting content entry")
			continue
		}
		mt := &openapi.MediaType{
			Schema: map[string]any{"$ref": "#/components/schemas/" + name},
		}
		if len(m.Examples) > 0 {
			mt.Examples = m.Examples
		} else if m.Example != nil {
			mt.Example = m.Example
		}
		content = merge.Deep(content, openapi.Content{ct: mt})
	}
	return content, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
