package generator

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/svctools/svc2openapi/internal/config"
	"github.com/svctools/svc2openapi/internal/openapi"
	"github.com/svctools/svc2openapi/internal/schema"
)

// Generator assembles an OpenAPI 3.0.0 document from a documentation config
// and a set of function definitions. One instance serves exactly one
// generation: construct, Parse, ReadFunctions, Definition. Parse must
// complete before ReadFunctions, which the API enforces by making
// ReadFunctions require the Registry that only Parse produces. Instances are
// not safe for concurrent use.
type Generator struct {
	cfg *config.Document // private deep copy of the caller's config
	doc *openapi.Document

	deriver    schema.Deriver
	deref      schema.Dereferencer
	newVersion func() string
	strict     bool
	log        zerolog.Logger
}

// Option mutates generator settings at construction.
type Option func(*Generator)

// WithDeriver replaces the type-to-schema deriver.
func WithDeriver(d schema.Deriver) Option { return func(g *Generator) { g.deriver = d } }

// WithDereferencer replaces the $ref dereferencer.
func WithDereferencer(d schema.Dereferencer) Option { return func(g *Generator) { g.deref = d } }

// WithVersionFallback replaces the generated-identifier source used when the
// config omits a version.
func WithVersionFallback(fn func() string) Option { return func(g *Generator) { g.newVersion = fn } }

// WithStrict promotes unresolved model references to generation errors
// instead of silently omitting the content entry.
func WithStrict(strict bool) Option { return func(g *Generator) { g.strict = strict } }

// WithLogger sets the diagnostics logger; silently-omitted references are
// logged at warn level.
func WithLogger(log zerolog.Logger) Option { return func(g *Generator) { g.log = log } }

// New builds a Generator over a private deep copy of cfg; the caller's
// structures are never aliased or mutated.
func New(cfg *config.Document, opts ...Option) *Generator {
	g := &Generator{
		cfg: cfg.Clone(),
		doc: &openapi.Document{
			OpenAPI: "3.0.0",
			Paths:   openapi.Paths{},
			Components: openapi.Components{
				Schemas:         map[string]map[string]any{},
				SecuritySchemes: map[string]*openapi.SecurityScheme{},
			},
		},
		deriver:    schema.DocDeriver{},
		deref:      schema.RefResolver{},
		newVersion: uuid.NewString,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Definition returns the assembled document. The generator never touches it
// after the final ReadFunctions call.
func (g *Generator) Definition() *openapi.Document { return g.doc }
