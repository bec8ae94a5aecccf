package schema

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSanitize_StripsMetaKey(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"type":    "object",
	}

	got := Sanitize(in)

	if _, ok := got["$schema"]; ok {
		t.Fatalf("$schema survived: %#v", got)
	}
	if got["type"] != "object" {
		t.Fatalf("payload keys lost: %#v", got)
	}
	if _, ok := in["$schema"]; !ok {
		t.Fatalf("input mutated: %#v", in)
	}
}

func TestSanitize_Nil(t *testing.T) {
	t.Parallel()
	if got := Sanitize(nil); got != nil {
		t.Fatalf("nil input: got %#v", got)
	}
}

func TestRefResolver_InlinesLocalRefs(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"owner": map[string]any{"$ref": "#/definitions/Owner"},
		},
		"definitions": map[string]any{
			"Owner": map[string]any{"type": "string"},
		},
	}

	got, err := RefResolver{}.Dereference(in)
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}

	props := got["properties"].(map[string]any)
	owner, ok := props["owner"].(map[string]any)
	if !ok || owner["type"] != "string" {
		t.Fatalf("ref not inlined: %#v", props["owner"])
	}
}

func TestRefResolver_UnresolvableRefKept(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"properties": map[string]any{
			"missing": map[string]any{"$ref": "#/definitions/Nope"},
		},
	}

	got, err := RefResolver{}.Dereference(in)
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}

	props := got["properties"].(map[string]any)
	missing := props["missing"].(map[string]any)
	if missing["$ref"] != "#/definitions/Nope" {
		t.Fatalf("unresolvable ref rewritten: %#v", missing)
	}
}

func TestRefResolver_CycleKept(t *testing.T) {
	t.Parallel()
	in := map[string]any{
		"definitions": map[string]any{
			"Node": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"next": map[string]any{"$ref": "#/definitions/Node"},
				},
			},
		},
		"$ref": "#/definitions/Node",
	}

	got, err := RefResolver{}.Dereference(in)
	if err != nil {
		t.Fatalf("dereference: %v", err)
	}
	props, ok := got["properties"].(map[string]any)
	if !ok {
		t.Fatalf("root ref not followed: %#v", got)
	}
	next := props["next"].(map[string]any)
	if next["$ref"] != "#/definitions/Node" {
		t.Fatalf("cyclic ref should stay a $ref: %#v", next)
	}
}

const sampleSchemaDoc = `$schema: "http://json-schema.org/draft-07/schema#"
definitions:
  Pet:
    type: object
    properties:
      name:
        type: string
      owner:
        $ref: "#/definitions/Owner"
  Owner:
    type: object
    properties:
      email:
        type: string
`

func writeSchemaDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte(sampleSchemaDoc), 0o600); err != nil {
		t.Fatalf("write schema doc: %v", err)
	}
	return path
}

func TestDocDeriver_SelectsDefinition(t *testing.T) {
	t.Parallel()
	path := writeSchemaDoc(t)

	got, err := DocDeriver{}.Derive(path, "Pet", DeriveOptions{Required: true, NoExtraProps: true})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	if got["type"] != "object" {
		t.Fatalf("type: got %#v", got["type"])
	}
	wantRequired := []any{"name", "owner"}
	if !reflect.DeepEqual(got["required"], wantRequired) {
		t.Fatalf("required: got %#v, want %#v", got["required"], wantRequired)
	}
	if got["additionalProperties"] != false {
		t.Fatalf("additionalProperties: got %#v", got["additionalProperties"])
	}
	// Sibling definitions stay so a later dereference can resolve Owner.
	if _, ok := got["definitions"].(map[string]any); !ok {
		t.Fatalf("definitions dropped: %#v", got)
	}
}

func TestDocDeriver_UnknownType(t *testing.T) {
	t.Parallel()
	path := writeSchemaDoc(t)

	if _, err := (DocDeriver{}).Derive(path, "Ghost", DeriveOptions{}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestDocDeriver_RootWhenTypeEmpty(t *testing.T) {
	t.Parallel()
	path := writeSchemaDoc(t)

	got, err := DocDeriver{}.Derive(path, "", DeriveOptions{})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if _, ok := got["definitions"]; !ok {
		t.Fatalf("expected document root, got %#v", got)
	}
}
