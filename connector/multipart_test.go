package connector

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func TestMultipartBody_Encode(t *testing.T) {
	body := &MultipartBody{
		Fields: map[string]string{"kind": "avatar"},
		Files: []FileField{
			{FieldName: "file", FileName: "a.png", ContentType: "image/png", Data: []byte{0x89, 0x50}},
			{FieldName: "notes", FileName: "n.txt", Reader: strings.NewReader("hello")},
		},
	}

	reader, contentType, err := body.encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q", mediaType)
	}

	mr := multipart.NewReader(reader, params["boundary"])
	seen := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("next part: %v", err)
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, part); err != nil {
			t.Fatalf("read part: %v", err)
		}
		seen[part.FormName()] = buf.String()
		if part.FormName() == "file" {
			if got := part.Header.Get("Content-Type"); got != "image/png" {
				t.Errorf("file content type = %q", got)
			}
		}
	}

	if seen["kind"] != "avatar" {
		t.Errorf("kind = %q", seen["kind"])
	}
	if seen["file"] != string([]byte{0x89, 0x50}) {
		t.Errorf("file data mismatch")
	}
	if seen["notes"] != "hello" {
		t.Errorf("notes = %q", seen["notes"])
	}
}

func TestEscapeQuotes(t *testing.T) {
	if got := escapeQuotes(`a"b\c`); got != `a\"b\\c` {
		t.Errorf("got %q", got)
	}
}
