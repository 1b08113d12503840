package connector

import "encoding/base64"

// Scheme identifies the authentication method.
type Scheme int

const (
	// SchemeNone disables authentication.
	SchemeNone Scheme = iota
	// SchemeBearer sends the credential as an Authorization bearer token.
	SchemeBearer
	// SchemeBasic sends a username/password pair as HTTP Basic authentication.
	SchemeBasic
	// SchemeHeader sends the credential in a caller-named header.
	SchemeHeader
	// SchemeQuery sends the credential in a caller-named query parameter.
	SchemeQuery
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeBearer:
		return "bearer"
	case SchemeBasic:
		return "basic"
	case SchemeHeader:
		return "header"
	case SchemeQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Credential is either a single opaque token or a username/password pair.
// The zero value is an empty credential, which disables auth application.
type Credential struct {
	token    string
	username string
	password string
	pair     bool
}

// Token creates a single-value credential.
func Token(value string) Credential {
	return Credential{token: value}
}

// UserPassword creates a username/password pair credential.
func UserPassword(username, password string) Credential {
	return Credential{username: username, password: password, pair: true}
}

// IsZero reports whether the credential is empty. A pair credential is
// never zero: constructing one is deliberate, and an empty pair still
// encodes to a valid (if blank) Basic authorization value.
func (c Credential) IsZero() bool {
	if c.pair {
		return false
	}
	return c.token == ""
}

// IsPair reports whether the credential holds a username/password pair.
func (c Credential) IsPair() bool {
	return c.pair
}

// AuthConfig configures request authentication.
type AuthConfig struct {
	// Scheme is the authentication method.
	Scheme Scheme
	// Credential is the token or username/password pair applied per Scheme.
	Credential Credential
	// HeaderName is the header to inject (SchemeHeader).
	HeaderName string
	// QueryArg is the query parameter to inject (SchemeQuery).
	QueryArg string
}

// BearerAuth creates a bearer token auth config.
func BearerAuth(token string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeBearer, Credential: Token(token)}
}

// BasicAuth creates a basic auth config.
func BasicAuth(username, password string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeBasic, Credential: UserPassword(username, password)}
}

// HeaderAuth creates an auth config that sends the token in a custom header.
func HeaderAuth(headerName, token string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeHeader, Credential: Token(token), HeaderName: headerName}
}

// QueryAuth creates an auth config that sends the token in a query parameter.
func QueryAuth(paramName, token string) *AuthConfig {
	return &AuthConfig{Scheme: SchemeQuery, Credential: Token(token), QueryArg: paramName}
}

// Apply injects credentials into copies of the given header and query
// parameter maps and returns the new snapshots. The inputs are never
// mutated. Keys already present are left untouched, so caller-supplied
// values always win over auth injection.
//
// A nil AuthConfig, SchemeNone, or an empty credential leaves the maps
// unchanged (the returned snapshots are still fresh copies).
func (a *AuthConfig) Apply(headers, params map[string]string) (map[string]string, map[string]string, error) {
	outHeaders := copyMap(headers)
	outParams := copyMap(params)

	if a == nil || a.Scheme == SchemeNone || a.Credential.IsZero() {
		return outHeaders, outParams, nil
	}

	switch a.Scheme {
	case SchemeBearer:
		if a.Credential.IsPair() {
			return nil, nil, NewConfigError("bearer authentication requires a single token credential")
		}
		setIfAbsent(outHeaders, "Authorization", "Bearer "+a.Credential.token)
	case SchemeBasic:
		if !a.Credential.IsPair() {
			return nil, nil, NewConfigError("basic authentication requires a username/password pair")
		}
		token := base64.StdEncoding.EncodeToString([]byte(a.Credential.username + ":" + a.Credential.password))
		setIfAbsent(outHeaders, "Authorization", "Basic "+token)
	case SchemeHeader:
		if a.HeaderName == "" {
			return nil, nil, NewConfigError("header authentication requires a header name")
		}
		if a.Credential.IsPair() {
			return nil, nil, NewConfigError("header authentication requires a single token credential")
		}
		setIfAbsent(outHeaders, a.HeaderName, a.Credential.token)
	case SchemeQuery:
		if a.QueryArg == "" {
			return nil, nil, NewConfigError("query authentication requires a query parameter name")
		}
		if a.Credential.IsPair() {
			return nil, nil, NewConfigError("query authentication requires a single token credential")
		}
		setIfAbsent(outParams, a.QueryArg, a.Credential.token)
	default:
		return nil, nil, NewConfigError("unsupported authentication scheme: " + a.Scheme.String())
	}

	return outHeaders, outParams, nil
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func setIfAbsent(m map[string]string, key, value string) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
