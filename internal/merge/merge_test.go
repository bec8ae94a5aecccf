package merge

import (
	"reflect"
	"testing"

	"github.com/svctools/svc2openapi/internal/openapi"
)

func TestDeep_RecursesSharedKeys(t *testing.T) {
	t.Parallel()
	dst := map[string]any{
		"a": map[string]any{"x": "1", "y": "2"},
	}
	src := map[string]any{
		"a": map[string]any{"y": "3", "z": "4"},
	}

	got := Deep(dst, src)

	want := map[string]any{
		"a": map[string]any{"x": "1", "y": "3", "z": "4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merged: got %#v, want %#v", got, want)
	}
}

func TestDeep_PreservesOneSidedKeys(t *testing.T) {
	t.Parallel()
	dst := map[string]any{"left": "only"}
	src := map[string]any{"right": "only"}

	got := Deep(dst, src)

	if got["left"] != "only" || got["right"] != "only" {
		t.Fatalf("one-sided keys: got %#v", got)
	}
}

func TestDeep_LaterSlicesReplace(t *testing.T) {
	t.Parallel()
	dst := map[string]any{"tags": []any{"a", "b"}}
	src := map[string]any{"tags": []any{"c"}}

	got := Deep(dst, src)

	want := []any{"c"}
	if !reflect.DeepEqual(got["tags"], want) {
		t.Fatalf("slice leaf: got %#v, want %#v", got["tags"], want)
	}
}

func TestDeep_DoesNotMutateArguments(t *testing.T) {
	t.Parallel()
	dst := map[string]any{"a": map[string]any{"x": "1"}}
	src := map[string]any{"a": map[string]any{"y": "2"}}

	_ = Deep(dst, src)

	if !reflect.DeepEqual(dst, map[string]any{"a": map[string]any{"x": "1"}}) {
		t.Fatalf("dst mutated: %#v", dst)
	}
	if !reflect.DeepEqual(src, map[string]any{"a": map[string]any{"y": "2"}}) {
		t.Fatalf("src mutated: %#v", src)
	}
}

func TestDeep_NilDestination(t *testing.T) {
	t.Parallel()
	var dst map[string]any
	src := map[string]any{"a": "1"}

	got := Deep(dst, src)

	if got["a"] != "1" {
		t.Fatalf("nil dst: got %#v", got)
	}
}

func TestDeep_PathFragmentsAccumulate(t *testing.T) {
	t.Parallel()
	get := &openapi.Operation{OperationID: "listPets"}
	post := &openapi.Operation{OperationID: "createPet"}
	other := &openapi.Operation{OperationID: "health"}

	paths := Deep(openapi.Paths{}, openapi.Paths{"/pets": {"get": get}})
	paths = Deep(paths, openapi.Paths{"/pets": {"post": post}})
	paths = Deep(paths, openapi.Paths{"/health": {"get": other}})

	if len(paths) != 2 {
		t.Fatalf("paths: got %d entries", len(paths))
	}
	item := paths["/pets"]
	if len(item) != 2 {
		t.Fatalf("/pets: sibling method clobbered: %#v", item)
	}
	if item["get"].OperationID != "listPets" || item["post"].OperationID != "createPet" {
		t.Fatalf("/pets: wrong operations: %#v", item)
	}
}

func TestDeep_ResponsesByStatus(t *testing.T) {
	t.Parallel()
	ok := &openapi.Response{Description: "ok", Content: openapi.Content{}}
	missing := &openapi.Response{Description: "missing", Content: openapi.Content{}}

	responses := Deep(openapi.Responses{}, openapi.Responses{"200": ok})
	responses = Deep(responses, openapi.Responses{"404": missing})

	if len(responses) != 2 {
		t.Fatalf("responses: got %d entries", len(responses))
	}
	if responses["200"].Description != "ok" || responses["404"].Description != "missing" {
		t.Fatalf("responses: %#v", responses)
	}
}
