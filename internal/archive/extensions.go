package archive

import (
	"strings"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
)

// extensionFields maps an archive entry extension to the document field it
// fills. The field names themselves are accepted as extensions too, so an
// entry named "notes.markdown" lands in the notes.
var extensionFields = map[string]document.Field{
	"html":       document.FieldMarkup,
	"css":        document.FieldStyle,
	"js":         document.FieldScript,
	"javascript": document.FieldScript,
	"md":         document.FieldNotes,
	"markdown":   document.FieldNotes,
}

// entryNames is the name each field is packed under.
var entryNames = map[document.Field]string{
	document.FieldMarkup: "index.html",
	document.FieldStyle:  "index.css",
	document.FieldScript: "index.js",
	document.FieldNotes:  "index.md",
}

// Extension returns the text after the last dot of an entry name, or the
// whole name when it has none.
func Extension(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// FieldForName reports which document field an archive entry feeds.
func FieldForName(name string) (document.Field, bool) {
	f, ok := extensionFields[Extension(name)]
	return f, ok
}

// EntryName returns the archive entry name a field is packed under.
func EntryName(f document.Field) string {
	return entryNames[f]
}
