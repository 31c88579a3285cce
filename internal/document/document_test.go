package document_test

import (
	"testing"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
)

func TestMergeOnlyTouchesPresentFields(t *testing.T) {
	d := document.Document{Markup: "<p>a</p>", Style: "a{}", Script: "x()", Notes: "# a"}
	d.Merge(document.Fields{
		document.FieldStyle: "b{}",
		document.FieldNotes: "",
	})
	want := document.Document{Markup: "<p>a</p>", Style: "b{}", Script: "x()", Notes: ""}
	if d != want {
		t.Fatalf("merge: got %+v want %+v", d, want)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	var d document.Document
	for i, f := range document.AllFields {
		d.Set(f, string(rune('a'+i)))
	}
	for i, f := range document.AllFields {
		if got := d.Get(f); got != string(rune('a'+i)) {
			t.Errorf("%s: got %q", f, got)
		}
	}
	d.Set(document.Field("readme"), "ignored")
	if d.Get(document.Field("readme")) != "" {
		t.Fatalf("unknown field should read as empty")
	}
}

func TestFieldValid(t *testing.T) {
	for _, f := range document.AllFields {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
	if document.Field("js").Valid() {
		t.Fatalf("extension names are not fields")
	}
}

func TestIsEmpty(t *testing.T) {
	if !(document.Document{}).IsEmpty() {
		t.Fatalf("zero document should be empty")
	}
	if (document.Document{Notes: "n"}).IsEmpty() {
		t.Fatalf("document with notes is not empty")
	}
}
