package fepack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
)

// Extension is the file extension of a saved pack.
const Extension = ".fepack"

// ErrInvalidPack indicates a pack source that yields no usable payload.
var ErrInvalidPack = errors.New("invalid pack")

// Pack bundles a document with the project path it belongs to.
type Pack struct {
	Path string            `json:"path"`
	Data document.Document `json:"data"`
}

// New builds the pack for doc at path. The leading slash of path is dropped.
func New(doc document.Document, path string) Pack {
	return Pack{Path: navigation.NormalizePath(path), Data: doc}
}

// Result is the outcome of a load. Replace asks the caller to leave the
// visible location alone, e.g. because it is already in sync.
type Result struct {
	Pack    Pack
	Replace bool
}

// Saver hands a pack off to wherever packs are kept.
type Saver interface {
	Save(ctx context.Context, p Pack) error
}

// Loader produces a single pack from its source.
type Loader interface {
	Load(ctx context.Context) (Result, error)
}

// Encode writes p as indented JSON.
func Encode(w io.Writer, p Pack) error {
	b, err := utils.PrettyJSON(p)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write pack: %w", err)
	}
	return nil
}

// Decode reads and validates a pack. The payload must be a JSON object with
// an object-valued "data"; path and document fields, when present, must be
// strings. Anything else is ErrInvalidPack.
func Decode(r io.Reader) (Pack, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Pack{}, fmt.Errorf("read pack: %w", err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return Pack{}, fmt.Errorf("%w: empty", ErrInvalidPack)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(b, &top); err != nil || top == nil {
		return Pack{}, fmt.Errorf("%w: not a JSON object", ErrInvalidPack)
	}

	var p Pack
	if raw, ok := top["path"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &p.Path); err != nil {
			return Pack{}, fmt.Errorf("%w: path is not a string", ErrInvalidPack)
		}
	}
	p.Path = navigation.NormalizePath(p.Path)

	rawData, ok := top["data"]
	if !ok || isNull(rawData) {
		return Pack{}, fmt.Errorf("%w: missing data", ErrInvalidPack)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &data); err != nil || data == nil {
		return Pack{}, fmt.Errorf("%w: data is not an object", ErrInvalidPack)
	}
	for _, f := range document.AllFields {
		raw, ok := data[string(f)]
		if !ok || isNull(raw) {
			continue
		}
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return Pack{}, fmt.Errorf("%w: data.%s is not a string", ErrInvalidPack, f)
		}
		p.Data.Set(f, text)
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// FileName returns the default file name for a pack of the given path.
func FileName(path string) string {
	name := navigation.NormalizePath(path)
	name = strings.Trim(name, "/")
	if name == "" {
		name = "root"
	}
	name = strings.ReplaceAll(name, "/", "-")
	return "fronteditor-" + name + Extension
}
