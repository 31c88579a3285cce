package fepack

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
)

func TestPackRoundTrip(t *testing.T) {
	doc := document.Document{Markup: "<p>x</p>", Style: "p{}", Script: "go()", Notes: "# n\n"}
	var buf bytes.Buffer
	if err := Encode(&buf, New(doc, "/myproj")); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Path != "myproj" {
		t.Fatalf("path: got %q", got.Path)
	}
	if got.Data != doc {
		t.Fatalf("data: got %+v want %+v", got.Data, doc)
	}
}

func TestEncodeShape(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, New(document.Document{Markup: "h"}, "p")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"path": "p"`, `"data": {`, `"html": "h"`, `"css": ""`, `"javascript": ""`, `"markdown": ""`} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded pack missing %s:\n%s", want, out)
		}
	}
}

func TestDecodeToleratesMissingFields(t *testing.T) {
	got, err := Decode(strings.NewReader(`{"data":{"css":"a","markdown":null}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Path != "" || got.Data != (document.Document{Style: "a"}) {
		t.Fatalf("unexpected pack: %+v", got)
	}
}

func TestDecodeRejectsInvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"whitespace":    "  \n",
		"not json":      "PK\x03\x04",
		"array":         `[{"path":"a"}]`,
		"null":          "null",
		"missing data":  `{"path":"a"}`,
		"null data":     `{"path":"a","data":null}`,
		"string data":   `{"path":"a","data":"<p>"}`,
		"numeric path":  `{"path":1,"data":{}}`,
		"numeric field": `{"path":"a","data":{"html":1}}`,
	}
	for name, in := range cases {
		if _, err := Decode(strings.NewReader(in)); !errors.Is(err, ErrInvalidPack) {
			t.Errorf("%s: expected ErrInvalidPack, got %v", name, err)
		}
	}
}

func TestFileTransport(t *testing.T) {
	dir := t.TempDir()
	tr := FileTransport{Path: filepath.Join(dir, "out", "site.fepack")}
	doc := document.Document{Markup: "m", Notes: "n"}
	if err := tr.Save(context.Background(), New(doc, "/site")); err != nil {
		t.Fatalf("save: %v", err)
	}
	res, err := tr.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Replace {
		t.Fatalf("replace should default to false")
	}
	if res.Pack.Path != "site" || res.Pack.Data != doc {
		t.Fatalf("unexpected pack: %+v", res.Pack)
	}

	tr.KeepPath = true
	res, err = tr.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Replace {
		t.Fatalf("KeepPath should report Replace")
	}
}

func TestFileTransportInvalidSources(t *testing.T) {
	dir := t.TempDir()
	_, err := FileTransport{Path: filepath.Join(dir, "nope.fepack")}.Load(context.Background())
	if !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("missing file: expected ErrInvalidPack, got %v", err)
	}
	bad := filepath.Join(dir, "bad.fepack")
	if err := os.WriteFile(bad, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = FileTransport{Path: bad}.Load(context.Background())
	if !errors.Is(err, ErrInvalidPack) {
		t.Fatalf("empty object: expected ErrInvalidPack, got %v", err)
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"":      "fronteditor-root.fepack",
		"/":     "fronteditor-root.fepack",
		"/site": "fronteditor-site.fepack",
		"a/b/":  "fronteditor-a-b.fepack",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
