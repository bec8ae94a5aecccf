package openapi

// Document object model for the emitted OpenAPI 3.0.0 tree. Schemas stay
// untyped maps since they arrive as JSON-Schema documents from config or the
// deriver; everything with fixed shape is typed so serialization is stable.

// Document is the root of the emitted object graph.
type Document struct {
	OpenAPI    string     `json:"openapi" yaml:"openapi"`
	Info       Info       `json:"info" yaml:"info"`
	Servers    []Server   `json:"servers,omitempty" yaml:"servers,omitempty"`
	Paths      Paths      `json:"paths" yaml:"paths"`
	Components Components `json:"components" yaml:"components"`
}

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
}

type Server struct {
	URL         string         `json:"url" yaml:"url"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Variables   map[string]any `json:"variables,omitempty" yaml:"variables,omitempty"`
}

type Components struct {
	Schemas         map[string]map[string]any  `json:"schemas" yaml:"schemas"`
	SecuritySchemes map[string]*SecurityScheme `json:"securitySchemes" yaml:"securitySchemes"`
}

// SecurityScheme is the public scheme shape. Name is the apiKey field name,
// not the registry key the scheme is stored under.
type SecurityScheme struct {
	Type             string         `json:"type" yaml:"type"`
	Description      string         `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string         `json:"name,omitempty" yaml:"name,omitempty"`
	In               string         `json:"in,omitempty" yaml:"in,omitempty"`
	Scheme           string         `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat     string         `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
	OpenIDConnectURL string         `json:"openIdConnectUrl,omitempty" yaml:"openIdConnectUrl,omitempty"`
	Flows            map[string]any `json:"flows,omitempty" yaml:"flows,omitempty"`
}

// Paths maps a document path (always "/"-prefixed) to its path item; a path
// item maps lower-case HTTP methods to operations.
type Paths map[string]PathItem

type PathItem map[string]*Operation

// SecurityRequirement maps a scheme name to its required scopes.
type SecurityRequirement map[string][]string

type Operation struct {
	OperationID string                `json:"operationId" yaml:"operationId"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Deprecated  bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Parameters  []*Parameter          `json:"parameters" yaml:"parameters"`
	RequestBody *RequestBody          `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   Responses             `json:"responses" yaml:"responses"`
	Security    []SecurityRequirement `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter carries the per-location defaulting results. Pointer fields are
// emitted only when the rules in the builder set them; description and
// required are always present.
type Parameter struct {
	Name            string         `json:"name" yaml:"name"`
	In              string         `json:"in" yaml:"in"`
	Description     string         `json:"description" yaml:"description"`
	Required        bool           `json:"required" yaml:"required"`
	Deprecated      *bool          `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	AllowEmptyValue *bool          `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	AllowReserved   *bool          `json:"allowReserved,omitempty" yaml:"allowReserved,omitempty"`
	Style           string         `json:"style,omitempty" yaml:"style,omitempty"`
	Explode         *bool          `json:"explode,omitempty" yaml:"explode,omitempty"`
	Schema          map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
	Examples        []any          `json:"examples,omitempty" yaml:"examples,omitempty"`
	Content         map[string]any `json:"content,omitempty" yaml:"content,omitempty"`
}

type RequestBody struct {
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Content     Content `json:"content" yaml:"content"`
}

// Responses is keyed by status code.
type Responses map[string]*Response

type Response struct {
	Description string             `json:"description" yaml:"description"`
	Content     Content            `json:"content" yaml:"content"`
	Headers     map[string]*Header `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Content is keyed by content type.
type Content map[string]*MediaType

type MediaType struct {
	Schema   map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example  any            `json:"example,omitempty" yaml:"example,omitempty"`
	Examples []any          `json:"examples,omitempty" yaml:"examples,omitempty"`
}

type Header struct {
	Description string         `json:"description" yaml:"description"`
	Schema      map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
}
