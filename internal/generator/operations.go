package generator

import (
	"strings"

	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/merge"
	"github.com/svctools/svc2openapi/internal/openapi"
)

// ReadFunctions builds one operation per documented HTTP event and merges the
// resulting single-entry {path: {method: operation}} fragments into the
// document's path tree, so many functions each contributing one path+method
// accumulate without clobbering siblings. It returns the fragment tree this
// call contributed.
func (g *Generator) ReadFunctions(reg *Registry, fns []config.Function) (openapi.Paths, error) {
	if reg == nil {
		return nil, &Error{Code: ConfigError, Message: "generator: ReadFunctions requires the registry returned by Parse"}
	}

	contributed := openapi.Paths{}
	for _, fn := range fns {
		for _, ev := range fn.Events {
			ep := ev.Endpoint()
			if ep == nil || ep.Documentation == nil {
				continue
			}
			op, err := g.buildOperation(reg, fn, ep)
			if err != nil {
				return nil, err
			}
			frag := openapi.Paths{
				normalizePath(ep.Path): openapi.PathItem{strings.ToLower(ep.Method): op},
			}
			contributed = merge.Deep(contributed, frag)
		}
	}

	g.doc.Paths = merge.Deep(g.doc.Paths, contributed)
	return contributed, nil
}

// buildOperation composes one operation from an endpoint's documentation
// block. Optional metadata is attached only when declared; parameters and
// responses are always computed, possibly empty.
func (g *Generator) buildOperation(reg *Registry, fn config.Function, ep *config.Endpoint) (*openapi.Operation, error) {
	doc := ep.Documentation

	responses, err := g.buildResponses(reg, fn.Name, doc)
	if err != nil {
		return nil, err
	}

	op := &openapi.Operation{
		OperationID: doc.OperationID,
		Parameters:  buildParameters(doc),
		Responses:   responses,
	}
	if op.OperationID == "" {
		op.OperationID = fn.Name
	}
	if doc.Summary != "" {
		op.Summary = doc.Summary
	}
	if doc.Description != "" {
		op.Description = doc.Description
	}
	if len(doc.Tags) > 0 {
		op.Tags = doc.Tags
	}
	if doc.Deprecated {
		op.Deprecated = true
	}

	rb, err := g.buildRequestBody(reg, fn.Name, doc)
	if err != nil {
		return nil, err
	}
	op.RequestBody = rb

	op.Security = g.resolveSecurity(reg, fn.Name, ep.AuthorizerName(), doc.Security)
	return op, nil
}

func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
