package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	cli "github.com/svctools/svc2openapi/internal/cli"
)

// Full documentation config exercising models, security, parameters and
// responses. The version is pinned so repeated runs produce identical bytes.
const fullConfig = `documentation:
  title: Pet Store
  description: Everything about pets
  version: "1.2.3"
  servers:
    - url: https://api.example.com
      description: production
  security:
    - name: petAuth
      authorizerName: petAuthorizer
      type: apiKey
      keyName: X-Api-Key
      in: header
  models:
    - name: Pet
      schema:
        type: object
        properties:
          name:
            type: string
          tag:
            type: string
functions:
  - name: getPet
    events:
      - http:
          path: pets/{id}
          method: GET
          authorizer: petAuthorizer
          documentation:
            summary: Fetch a pet
            operationId: getPetById
            tags:
              - pets
            pathParams:
              - name: id
                description: Pet identifier
                schema:
                  type: string
            methodResponses:
              - statusCode: 200
                responseBody:
                  description: The requested pet
                responseModels:
                  application/json: Pet
              - statusCode: "404"
                responseBody:
                  description: No such pet
  - name: createPet
    events:
      - httpApi:
          path: /pets
          method: POST
          documentation:
            summary: Create a pet
            requestBody:
              description: The pet to create
            requestModels:
              application/json: Pet
            methodResponses:
              - statusCode: 201
                responseModels:
                  application/json: Pet
`

func writeTempConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "svc2openapi.yaml")
	if err := os.WriteFile(p, []byte(fullConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func runCLI(t *testing.T, args ...string) {
	t.Helper()
	root := cli.NewRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("cli execute %v: %v", args, err)
	}
}

func loadAndValidate(t *testing.T, path string) *openapi3.T {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		t.Fatalf("emitted document is not valid OpenAPI 3.0: %v", err)
	}
	return doc
}

func TestE2E_GenerateYAML_ValidOpenAPI(t *testing.T) {
	t.Parallel()
	cfg := writeTempConfig(t)
	out := filepath.Join(t.TempDir(), "openapi.yaml")

	runCLI(t, "generate", "--config", cfg, "--out", out)

	doc := loadAndValidate(t, out)
	if doc.Info == nil || doc.Info.Title != "Pet Store" || doc.Info.Version != "1.2.3" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
	item := doc.Paths["/pets/{id}"]
	if item == nil || item.Get == nil {
		t.Fatalf("missing GET /pets/{id}: %+v", doc.Paths)
	}
	if item.Get.OperationID != "getPetById" {
		t.Errorf("operationId: got %q", item.Get.OperationID)
	}
	if item.Get.Security == nil || len(*item.Get.Security) != 1 {
		t.Fatalf("expected one security requirement, got %+v", item.Get.Security)
	}
	if _, ok := (*item.Get.Security)[0]["petAuth"]; !ok {
		t.Errorf("security requirement does not reference petAuth")
	}
	if doc.Paths["/pets"] == nil || doc.Paths["/pets"].Post == nil {
		t.Fatalf("missing POST /pets")
	}
	if doc.Components == nil {
		t.Fatalf("missing components")
	}
	if _, ok := doc.Components.Schemas["Pet"]; !ok {
		t.Errorf("components.schemas missing Pet")
	}
	if _, ok := doc.Components.SecuritySchemes["petAuth"]; !ok {
		t.Errorf("components.securitySchemes missing petAuth")
	}
}

func TestE2E_GenerateJSON_ValidOpenAPI(t *testing.T) {
	t.Parallel()
	cfg := writeTempConfig(t)
	out := filepath.Join(t.TempDir(), "openapi.json")

	runCLI(t, "generate", "--config", cfg, "--out", out)
	loadAndValidate(t, out)
}

func TestE2E_Generate_Deterministic(t *testing.T) {
	t.Parallel()
	cfg := writeTempConfig(t)
	out1 := filepath.Join(t.TempDir(), "openapi.json")
	out2 := filepath.Join(t.TempDir(), "openapi.json")

	runCLI(t, "generate", "--config", cfg, "--out", out1)
	runCLI(t, "generate", "--config", cfg, "--out", out2)

	b1, err := os.ReadFile(out1)
	if err != nil {
		t.Fatalf("read first output: %v", err)
	}
	b2, err := os.ReadFile(out2)
	if err != nil {
		t.Fatalf("read second output: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatalf("outputs differ between runs:\n%s\n---\n%s", b1, b2)
	}
}
