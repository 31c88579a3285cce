package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
)

// MaxEntrySize caps how much of a single archive entry is read.
const MaxEntrySize = 32 << 20

// ErrInvalidArchive indicates an uploaded archive holds none of the
// recognized entries or cannot be read as a ZIP container.
var ErrInvalidArchive = errors.New("invalid archive")

// Entry is one named file of an archive.
type Entry struct {
	Name    string
	Content string
}

// Entries returns the four archive entries for doc in archive order. The
// markup is rendered through RenderHTML; the other fields are verbatim.
func Entries(doc document.Document) []Entry {
	out := make([]Entry, 0, len(document.AllFields))
	for _, f := range document.AllFields {
		content := doc.Get(f)
		if f == document.FieldMarkup {
			content = RenderHTML(content)
		}
		out = append(out, Entry{Name: EntryName(f), Content: content})
	}
	return out
}

// Pack writes doc to w as a ZIP archive, stamping every entry with modified.
func Pack(w io.Writer, doc document.Document, modified time.Time) error {
	zw := zip.NewWriter(w)
	for _, e := range Entries(doc) {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("create %s: %w", e.Name, err)
		}
		if _, err := io.WriteString(fw, e.Content); err != nil {
			return fmt.Errorf("write %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}

// Unpack reads an uploaded archive and returns exactly the fields it found.
// Entries are dispatched on their extension; unknown entries are ignored.
// Merging the result into a live document is left to the caller.
func Unpack(data []byte) (document.Fields, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}
	fields := document.Fields{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		field, ok := FieldForName(f.Name)
		if !ok {
			continue
		}
		text, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArchive, f.Name, err)
		}
		fields[field] = text
	}
	if len(fields) == 0 {
		return nil, ErrInvalidArchive
	}
	return fields, nil
}

func readEntry(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, MaxEntrySize+1))
	if err != nil {
		return "", err
	}
	if len(b) > MaxEntrySize {
		return "", fmt.Errorf("entry larger than %d bytes", MaxEntrySize)
	}
	return string(b), nil
}

// FileName returns the download name for an archive created at t, e.g.
// frontend-editor-2024-05-01T10:20:30.000Z.zip.
func FileName(t time.Time) string {
	return "frontend-editor-" + t.UTC().Format("2006-01-02T15:04:05.000Z") + ".zip"
}
