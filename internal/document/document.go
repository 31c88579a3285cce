package document

// Field names one of the four documents of a project. The values double as
// the JSON keys used by packs and stored projects.
type Field string

const (
	FieldMarkup Field = "html"
	FieldStyle  Field = "css"
	FieldScript Field = "javascript"
	FieldNotes  Field = "markdown"
)

// AllFields lists the fields in archive order.
var AllFields = []Field{FieldMarkup, FieldStyle, FieldScript, FieldNotes}

// Valid reports whether f is one of the four known fields.
func (f Field) Valid() bool {
	switch f {
	case FieldMarkup, FieldStyle, FieldScript, FieldNotes:
		return true
	}
	return false
}

// Document is the unit of persistence: markup, stylesheet, script and notes.
// The zero value is the empty document.
type Document struct {
	Markup string `json:"html"`
	Style  string `json:"css"`
	Script string `json:"javascript"`
	Notes  string `json:"markdown"`
}

// Fields is a partial document holding only the fields that were found.
type Fields map[Field]string

// Get returns the text of a single field.
func (d Document) Get(f Field) string {
	switch f {
	case FieldMarkup:
		return d.Markup
	case FieldStyle:
		return d.Style
	case FieldScript:
		return d.Script
	case FieldNotes:
		return d.Notes
	}
	return ""
}

// Set replaces a single field. Unknown fields are ignored.
func (d *Document) Set(f Field, text string) {
	switch f {
	case FieldMarkup:
		d.Markup = text
	case FieldStyle:
		d.Style = text
	case FieldScript:
		d.Script = text
	case FieldNotes:
		d.Notes = text
	}
}

// Merge overwrites the fields present in fs and leaves the others untouched.
func (d *Document) Merge(fs Fields) {
	for f, text := range fs {
		d.Set(f, text)
	}
}

// IsEmpty reports whether all four fields are empty.
func (d Document) IsEmpty() bool {
	return d == Document{}
}
