package connector

import "encoding/json"

// Body holds a normalized response body. It is either structured (a
// decoded JSON value) or raw text, decided once by a parse attempt at
// normalization time. Malformed JSON is not an error at that point; the
// body simply stays raw.
type Body struct {
	value      any
	raw        string
	structured bool
}

// StructuredBody wraps an already-decoded JSON value.
func StructuredBody(value any) Body {
	return Body{value: value, structured: true}
}

// RawBody wraps unparsed body text.
func RawBody(text string) Body {
	return Body{raw: text}
}

// normalizeBody attempts a JSON decode of data, falling back to raw text.
func normalizeBody(data []byte) Body {
	if len(data) == 0 {
		return RawBody("")
	}
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return RawBody(string(data))
	}
	return StructuredBody(value)
}

// IsStructured reports whether the body holds a decoded JSON value.
func (b Body) IsStructured() bool {
	return b.structured
}

// Value returns the decoded JSON value, or the raw text for raw bodies.
func (b Body) Value() any {
	if b.structured {
		return b.value
	}
	return b.raw
}

// Raw returns the body's textual form. For structured bodies this is a
// re-encoding of the decoded value.
func (b Body) Raw() string {
	if !b.structured {
		return b.raw
	}
	data, err := json.Marshal(b.value)
	if err != nil {
		return ""
	}
	return string(data)
}

// JSON returns the decoded JSON value. Structured bodies are unwrapped
// directly; raw bodies get a fresh parse attempt, and a parse failure is
// returned to the caller.
func (b Body) JSON() (any, error) {
	if b.structured {
		return b.value, nil
	}
	var value any
	if err := json.Unmarshal([]byte(b.raw), &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Decode unmarshals the body into v.
func (b Body) Decode(v any) error {
	return json.Unmarshal([]byte(b.Raw()), v)
}

// Response is the normalized result of one API call.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers is a snapshot of the response headers.
	Headers map[string]string
	// Body is the normalized body.
	Body Body
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// JSON returns the body as a decoded JSON value. See Body.JSON.
func (r *Response) JSON() (any, error) {
	return r.Body.JSON()
}
