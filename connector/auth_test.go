package connector

import (
	"encoding/base64"
	"testing"
)

func TestBearerAuth_Apply(t *testing.T) {
	auth := BearerAuth("my-token")
	headers, params, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := headers["Authorization"]; got != "Bearer my-token" {
		t.Errorf("got %q, want %q", got, "Bearer my-token")
	}
	if len(params) != 0 {
		t.Errorf("params should be empty, got %v", params)
	}
}

func TestBasicAuth_Apply(t *testing.T) {
	auth := BasicAuth("user", "pass")
	headers, _, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
	if got := headers["Authorization"]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBasicAuth_EmptyPair(t *testing.T) {
	// An empty username/password pair is still a pair: it encodes and
	// sends a blank Basic credential rather than silently skipping auth.
	auth := BasicAuth("", "")
	headers, _, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(":"))
	if got := headers["Authorization"]; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBasicAuth_RequiresPair(t *testing.T) {
	auth := &AuthConfig{Scheme: SchemeBasic, Credential: Token("single")}
	_, _, err := auth.Apply(nil, nil)
	if err == nil {
		t.Fatal("expected error for non-pair credential")
	}
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %T", err)
	}
}

func TestHeaderAuth_Apply(t *testing.T) {
	auth := HeaderAuth("X-API-Key", "secret-key")
	headers, _, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := headers["X-API-Key"]; got != "secret-key" {
		t.Errorf("got %q, want %q", got, "secret-key")
	}
}

func TestHeaderAuth_RequiresName(t *testing.T) {
	auth := &AuthConfig{Scheme: SchemeHeader, Credential: Token("secret")}
	_, _, err := auth.Apply(nil, nil)
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestQueryAuth_Apply(t *testing.T) {
	auth := QueryAuth("api_key", "secret-key")
	headers, params, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := params["api_key"]; got != "secret-key" {
		t.Errorf("got %q, want %q", got, "secret-key")
	}
	if len(headers) != 0 {
		t.Errorf("headers should be empty, got %v", headers)
	}
}

func TestQueryAuth_RequiresArg(t *testing.T) {
	auth := &AuthConfig{Scheme: SchemeQuery, Credential: Token("secret")}
	_, _, err := auth.Apply(nil, nil)
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestApply_UnsupportedScheme(t *testing.T) {
	auth := &AuthConfig{Scheme: Scheme(99), Credential: Token("secret")}
	_, _, err := auth.Apply(nil, nil)
	if !IsConfigError(err) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestApply_SetIfAbsent(t *testing.T) {
	tests := []struct {
		name string
		auth *AuthConfig
		key  string
		in   string // "headers" or "params"
	}{
		{"bearer", BearerAuth("token"), "Authorization", "headers"},
		{"header", HeaderAuth("X-API-Key", "token"), "X-API-Key", "headers"},
		{"query", QueryAuth("api_key", "token"), "api_key", "params"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			params := map[string]string{}
			if tt.in == "headers" {
				headers[tt.key] = "caller-value"
			} else {
				params[tt.key] = "caller-value"
			}

			outHeaders, outParams, err := tt.auth.Apply(headers, params)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := outHeaders[tt.key]
			if tt.in == "params" {
				got = outParams[tt.key]
			}
			if got != "caller-value" {
				t.Errorf("caller-set value overwritten: got %q", got)
			}
		})
	}
}

func TestApply_Idempotent(t *testing.T) {
	auth := BearerAuth("token")
	headers, params, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	headers2, _, err := auth.Apply(headers, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headers2["Authorization"] != headers["Authorization"] {
		t.Errorf("second apply changed the header: %q vs %q",
			headers2["Authorization"], headers["Authorization"])
	}
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	auth := BearerAuth("token")
	headers := map[string]string{"Accept": "application/json"}
	params := map[string]string{"page": "1"}

	outHeaders, outParams, err := auth.Apply(headers, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := headers["Authorization"]; ok {
		t.Error("input headers were mutated")
	}
	if outHeaders["Accept"] != "application/json" || outParams["page"] != "1" {
		t.Error("existing entries not carried into snapshots")
	}
}

func TestNilAuth_Apply(t *testing.T) {
	var auth *AuthConfig
	headers, params, err := auth.Apply(map[string]string{"A": "1"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if headers["A"] != "1" || len(params) != 0 {
		t.Errorf("nil auth should return copies unchanged, got %v %v", headers, params)
	}
}

func TestSchemeNone_Apply(t *testing.T) {
	auth := &AuthConfig{Scheme: SchemeNone, Credential: Token("ignored")}
	headers, _, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 0 {
		t.Errorf("SchemeNone should not inject anything, got %v", headers)
	}
}

func TestEmptyCredential_Apply(t *testing.T) {
	auth := &AuthConfig{Scheme: SchemeBearer}
	headers, _, err := auth.Apply(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(headers) != 0 {
		t.Errorf("empty credential should be a no-op, got %v", headers)
	}
}

func TestScheme_String(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   string
	}{
		{SchemeNone, "none"},
		{SchemeBearer, "bearer"},
		{SchemeBasic, "basic"},
		{SchemeHeader, "header"},
		{SchemeQuery, "query"},
		{Scheme(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.scheme.String(); got != tt.want {
			t.Errorf("Scheme(%d).String() = %q, want %q", tt.scheme, got, tt.want)
		}
	}
}
