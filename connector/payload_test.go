package connector

import (
	"reflect"
	"testing"
)

func TestNormalizeBody_JSONObject(t *testing.T) {
	body := normalizeBody([]byte(`{"name":"Alice","age":30}`))
	if !body.IsStructured() {
		t.Fatal("expected structured body")
	}
	value, err := body.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", value)
	}
	if m["name"] != "Alice" {
		t.Errorf("got %v", m["name"])
	}
}

func TestNormalizeBody_JSONArrayRoundTrip(t *testing.T) {
	body := normalizeBody([]byte(`[1,2,3]`))
	if !body.IsStructured() {
		t.Fatal("expected structured body")
	}
	value, err := body.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []any{float64(1), float64(2), float64(3)}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("got %v, want %v", value, want)
	}
}

func TestNormalizeBody_TextFallback(t *testing.T) {
	body := normalizeBody([]byte("plain text, not json"))
	if body.IsStructured() {
		t.Fatal("expected raw body")
	}
	if body.Raw() != "plain text, not json" {
		t.Errorf("got %q", body.Raw())
	}
	if _, err := body.JSON(); err == nil {
		t.Error("JSON() on non-JSON text should fail")
	}
}

func TestNormalizeBody_Empty(t *testing.T) {
	body := normalizeBody(nil)
	if body.IsStructured() {
		t.Error("empty body should be raw")
	}
	if body.Raw() != "" {
		t.Errorf("got %q", body.Raw())
	}
}

func TestBody_Value(t *testing.T) {
	s := StructuredBody(map[string]any{"k": "v"})
	if _, ok := s.Value().(map[string]any); !ok {
		t.Errorf("got %T", s.Value())
	}

	r := RawBody("hello")
	if r.Value() != "hello" {
		t.Errorf("got %v", r.Value())
	}
}

func TestBody_RawReencodesStructured(t *testing.T) {
	b := StructuredBody([]any{"a", "b"})
	if b.Raw() != `["a","b"]` {
		t.Errorf("got %q", b.Raw())
	}
}

func TestBody_Decode(t *testing.T) {
	body := normalizeBody([]byte(`{"name":"Bob"}`))
	var out struct {
		Name string `json:"name"`
	}
	if err := body.Decode(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Bob" {
		t.Errorf("got %q", out.Name)
	}
}

func TestResponse_StatusHelpers(t *testing.T) {
	ok := &Response{StatusCode: 204}
	if !ok.IsSuccess() || ok.IsError() {
		t.Error("204 should be success")
	}
	notFound := &Response{StatusCode: 404}
	if notFound.IsSuccess() || !notFound.IsError() {
		t.Error("404 should be error")
	}
	redirect := &Response{StatusCode: 302}
	if redirect.IsSuccess() || redirect.IsError() {
		t.Error("302 is neither success nor error")
	}
}
