package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the top-level documentation config: the API-level inputs plus the
// function definitions whose events carry documentation blocks.
type File struct {
	Documentation Document   `yaml:"documentation"`
	Functions     []Function `yaml:"functions"`
}

// Document describes the API-level inputs: info fields, servers, security
// definitions, and the reusable models.
type Document struct {
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Version     string               `yaml:"version"`
	Servers     []Server             `yaml:"servers"`
	Security    []SecurityDefinition `yaml:"security"`
	Models      []Model              `yaml:"models"`
}

type Server struct {
	URL         string         `yaml:"url"`
	Description string         `yaml:"description"`
	Variables   map[string]any `yaml:"variables"`
}

// SecurityDefinition declares one named security scheme. Name doubles as the
// document key; AuthorizerName links the scheme to function authorizers and
// never appears in the output. KeyName is emitted as the scheme object's
// "name" field (the apiKey header/query name), since the top-level name is
// taken by the registry key.
type SecurityDefinition struct {
	Name             string         `yaml:"name"`
	AuthorizerName   string         `yaml:"authorizerName"`
	Type             string         `yaml:"type"`
	Description      string         `yaml:"description"`
	KeyName          string         `yaml:"keyName"`
	In               string         `yaml:"in"`
	Scheme           string         `yaml:"scheme"`
	BearerFormat     string         `yaml:"bearerFormat"`
	OpenIDConnectURL string         `yaml:"openIdConnectUrl"`
	Flows            map[string]any `yaml:"flows"`
}

// Model is a named, reusable schema: either a literal JSON-Schema map or a
// reference into a schema document on disk.
type Model struct {
	Name       string         `yaml:"name"`
	Schema     map[string]any `yaml:"schema"`
	SchemaFrom *SchemaFrom    `yaml:"schemaFrom"`
	Example    any            `yaml:"example"`
	Examples   []any          `yaml:"examples"`
}

// SchemaFrom points at a named type inside a JSON-Schema document.
type SchemaFrom struct {
	File string `yaml:"file"`
	Type string `yaml:"type"`
}

type Function struct {
	Name   string  `yaml:"name"`
	Events []Event `yaml:"events"`
}

// Event carries at most one HTTP trigger, under either key.
type Event struct {
	HTTP    *Endpoint `yaml:"http"`
	HTTPAPI *Endpoint `yaml:"httpApi"`
}

// Endpoint returns the event's endpoint regardless of which trigger kind
// declared it, or nil when the event is not an HTTP trigger. Downstream code
// never branches on the event shape.
func (e Event) Endpoint() *Endpoint {
	if e.HTTP != nil {
		return e.HTTP
	}
	return e.HTTPAPI
}

// Endpoint is the normalized shape both trigger kinds share.
type Endpoint struct {
	Path          string         `yaml:"path"`
	Method        string         `yaml:"method"`
	Authorizer    any            `yaml:"authorizer"`
	Documentation *Documentation `yaml:"documentation"`
}

// AuthorizerName extracts the authorizer identity from either a scalar name
// or a mapping carrying a name key.
func (ep *Endpoint) AuthorizerName() string {
	switch v := ep.Authorizer.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["name"].(string); ok {
			return s
		}
	}
	return ""
}

// Documentation is the metadata block attached to one HTTP event.
type Documentation struct {
	Summary         string            `yaml:"summary"`
	Description     string            `yaml:"description"`
	OperationID     string            `yaml:"operationId"`
	Tags            []string          `yaml:"tags"`
	Deprecated      bool              `yaml:"deprecated"`
	PathParams      []Parameter       `yaml:"pathParams"`
	QueryParams     []Parameter       `yaml:"queryParams"`
	RequestHeaders  []Parameter       `yaml:"requestHeaders"`
	CookieParams    []Parameter       `yaml:"cookieParams"`
	RequestBody     *RequestBody      `yaml:"requestBody"`
	RequestModels   map[string]string `yaml:"requestModels"`
	MethodResponses []MethodResponse  `yaml:"methodResponses"`
	Security        []string          `yaml:"security"`
}

type RequestBody struct {
	Description string `yaml:"description"`
}

// Parameter is one declared request parameter. Pointer fields distinguish
// "not specified" from an explicit false so the builders can apply the
// per-location defaulting rules.
type Parameter struct {
	Name            string         `yaml:"name"`
	Description     string         `yaml:"description"`
	Required        bool           `yaml:"required"`
	Deprecated      *bool          `yaml:"deprecated"`
	AllowEmptyValue bool           `yaml:"allowEmptyValue"`
	AllowReserved   *bool          `yaml:"allowReserved"`
	Style           string         `yaml:"style"`
	Explode         *bool          `yaml:"explode"`
	Schema          map[string]any `yaml:"schema"`
	Examples        []any          `yaml:"examples"`
	Content         map[string]any `yaml:"content"`
}

type MethodResponse struct {
	StatusCode      StatusCode        `yaml:"statusCode"`
	ResponseBody    *ResponseBody     `yaml:"responseBody"`
	ResponseModels  map[string]string `yaml:"responseModels"`
	ResponseHeaders []ResponseHeader  `yaml:"responseHeaders"`
}

type ResponseBody struct {
	Description string `yaml:"description"`
}

type ResponseHeader struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Schema      map[string]any `yaml:"schema"`
}

// StatusCode accepts both bare (200) and quoted ("200") scalar codes.
type StatusCode string

func (c *StatusCode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("statusCode: expected a scalar, got %v", value.Tag)
	}
	*c = StatusCode(value.Value)
	return nil
}

// Load reads and decodes a documentation config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &f, nil
}
