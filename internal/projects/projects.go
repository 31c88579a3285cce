package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/KaramelBytes/fronteditor-cli/internal/store"
)

// Prefix namespaces project records inside the local store.
const Prefix = "fronteditor:"

var (
	// ErrProjectNotFound indicates no record is stored under a path.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMalformedStoredProject indicates a stored record that is not a JSON
	// object or whose document fields are not strings.
	ErrMalformedStoredProject = errors.New("malformed stored project")
)

// Entry is one project of the index as shown to the user.
type Entry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// record is the stored value: optional name and path next to the four
// document fields.
type record struct {
	Name string `json:"name,omitempty"`
	Path string `json:"path,omitempty"`
	document.Document
}

// Index is the catalog of saved projects kept in a local store.
type Index struct {
	store store.Store
}

func NewIndex(s store.Store) *Index {
	return &Index{store: s}
}

// Key returns the store key a project path is saved under.
func Key(path string) string {
	return Prefix + path
}

// List returns an entry for every key under Prefix, in the store's order.
func (x *Index) List(ctx context.Context) ([]Entry, error) {
	keys, err := x.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list store keys: %w", err)
	}
	var entries []Entry
	for _, k := range keys {
		if !strings.HasPrefix(k, Prefix) {
			continue
		}
		raw, err := x.store.Get(ctx, k)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		entries = append(entries, deriveEntry(strings.TrimPrefix(k, Prefix), raw))
	}
	return entries, nil
}

// deriveEntry names an entry from the stored name and path, falling back to
// the bare key. Values that do not parse still get listed under their key.
func deriveEntry(bare, raw string) Entry {
	var meta map[string]any
	_ = json.Unmarshal([]byte(raw), &meta)

	name, _ := meta["name"].(string)
	if name == "" {
		name = bare
	}
	if name == "" {
		name = "/"
	}
	path, _ := meta["path"].(string)
	if path == "" {
		path = bare
	}
	return Entry{Name: name, Path: path}
}

// Load reads the document stored for an entry. Only the four document
// fields are extracted; anything else in the record is ignored.
func (x *Index) Load(ctx context.Context, e Entry) (document.Document, error) {
	path := e.Path
	if path == "/" {
		path = ""
	}
	raw, err := x.store.Get(ctx, Key(path))
	if errors.Is(err, store.ErrNotFound) {
		return document.Document{}, fmt.Errorf("%w: %s", ErrProjectNotFound, navigation.Pathname(path))
	}
	if err != nil {
		return document.Document{}, fmt.Errorf("read project: %w", err)
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return document.Document{}, fmt.Errorf("%s: %w", navigation.Pathname(path), err)
	}
	return doc, nil
}

func decodeDocument(raw string) (document.Document, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return document.Document{}, fmt.Errorf("%w: %v", ErrMalformedStoredProject, err)
	}
	if obj == nil {
		return document.Document{}, fmt.Errorf("%w: not an object", ErrMalformedStoredProject)
	}
	var doc document.Document
	for _, f := range document.AllFields {
		v, ok := obj[string(f)]
		if !ok || string(v) == "null" {
			continue
		}
		var text string
		if err := json.Unmarshal(v, &text); err != nil {
			return document.Document{}, fmt.Errorf("%w: field %s is not a string", ErrMalformedStoredProject, f)
		}
		doc.Set(f, text)
	}
	return doc, nil
}

// Save creates or overwrites the record for path. An empty name keeps the
// name already stored for that path.
func (x *Index) Save(ctx context.Context, path, name string, doc document.Document) error {
	path = navigation.NormalizePath(path)
	if name == "" {
		name = x.storedName(ctx, path)
	}
	b, err := json.Marshal(record{Name: name, Path: path, Document: doc})
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}
	if err := x.store.Set(ctx, Key(path), string(b)); err != nil {
		return fmt.Errorf("store project: %w", err)
	}
	return nil
}

func (x *Index) storedName(ctx context.Context, path string) string {
	raw, err := x.store.Get(ctx, Key(path))
	if err != nil {
		return ""
	}
	var meta map[string]any
	if json.Unmarshal([]byte(raw), &meta) != nil {
		return ""
	}
	name, _ := meta["name"].(string)
	return name
}

// Remove deletes the record for path. Entries are only ever removed on
// request.
func (x *Index) Remove(ctx context.Context, path string) error {
	path = navigation.NormalizePath(path)
	if _, err := x.store.Get(ctx, Key(path)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, navigation.Pathname(path))
		}
		return fmt.Errorf("read project: %w", err)
	}
	if err := x.store.Delete(ctx, Key(path)); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// Find returns the entry whose path matches query, or failing that the
// first entry whose name does.
func (x *Index) Find(ctx context.Context, query string) (Entry, error) {
	entries, err := x.List(ctx)
	if err != nil {
		return Entry{}, err
	}
	want := navigation.NormalizePath(query)
	for _, e := range entries {
		if navigation.NormalizePath(e.Path) == want {
			return e, nil
		}
	}
	for _, e := range entries {
		if e.Name == query {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrProjectNotFound, query)
}
