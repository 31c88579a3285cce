package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KaramelBytes/fronteditor-cli/internal/archive"
	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/fepack"
	"github.com/KaramelBytes/fronteditor-cli/internal/messages"
	"github.com/KaramelBytes/fronteditor-cli/internal/navigation"
	"github.com/KaramelBytes/fronteditor-cli/internal/projects"
)

// Notifier surfaces a message to the user.
type Notifier interface {
	Alert(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Alert(msg string) { f(msg) }

// Editor holds the live document and runs the project commands against it.
// Every command validates its input before touching the document or the
// location, so a failed command leaves both as they were. Commands are not
// safe for concurrent use.
type Editor struct {
	Doc      document.Document
	Binder   *navigation.Binder
	Index    *projects.Index
	Notifier Notifier
	Messages messages.Messages
}

// New builds an editor with an empty live document.
func New(b *navigation.Binder, idx *projects.Index, n Notifier, msgs messages.Messages) *Editor {
	return &Editor{Binder: b, Index: idx, Notifier: n, Messages: msgs}
}

// Open builds an editor whose live document is the project stored at the
// binder's current location, or an empty document if none is stored.
func Open(ctx context.Context, b *navigation.Binder, idx *projects.Index, n Notifier, msgs messages.Messages) (*Editor, error) {
	e := New(b, idx, n, msgs)
	doc, err := idx.Load(ctx, projects.Entry{Path: b.Path()})
	switch {
	case err == nil:
		e.Doc = doc
	case errors.Is(err, projects.ErrProjectNotFound):
	default:
		return nil, err
	}
	return e, nil
}

// Path returns the active project path.
func (e *Editor) Path() string {
	return e.Binder.Path()
}

// Persist stores the live document under the active path.
func (e *Editor) Persist(ctx context.Context) error {
	return e.Index.Save(ctx, e.Path(), "", e.Doc)
}

// Projects lists the saved projects.
func (e *Editor) Projects(ctx context.Context) ([]projects.Entry, error) {
	return e.Index.List(ctx)
}

// DownloadArchive writes the live document to w as an archive.
func (e *Editor) DownloadArchive(w io.Writer, now time.Time) error {
	return archive.Pack(w, e.Doc, now)
}

// UploadArchive merges the fields found in an uploaded archive into the live
// document. Fields missing from the archive keep their current text.
func (e *Editor) UploadArchive(ctx context.Context, data []byte) error {
	fields, err := archive.Unpack(data)
	if err != nil {
		e.alert(err)
		return err
	}
	e.Doc.Merge(fields)
	return e.Persist(ctx)
}

// SavePack hands the live document and its path to saver.
func (e *Editor) SavePack(ctx context.Context, saver fepack.Saver) error {
	if err := saver.Save(ctx, fepack.New(e.Doc, e.Path())); err != nil {
		return fmt.Errorf("save pack: %w", err)
	}
	return nil
}

// LoadPack replaces the live document with a loaded pack. Unless the loader
// asks to keep it, the location moves to the pack's path before the document
// changes. The pack is stored before the location moves so the location never
// points at a project that failed to save.
func (e *Editor) LoadPack(ctx context.Context, loader fepack.Loader) error {
	res, err := loader.Load(ctx)
	if err != nil {
		if !errors.Is(err, fepack.ErrInvalidPack) {
			err = fmt.Errorf("%w: %v", fepack.ErrInvalidPack, err)
		}
		e.alert(err)
		return err
	}
	path := e.Path()
	if !res.Replace {
		if err := navigation.ValidatePath(res.Pack.Path); err != nil {
			return err
		}
		path = navigation.NormalizePath(res.Pack.Path)
	}
	if err := e.Index.Save(ctx, path, "", res.Pack.Data); err != nil {
		return err
	}
	if !res.Replace {
		if err := e.Binder.SetPath(path); err != nil {
			return err
		}
	}
	e.Doc = res.Pack.Data
	return nil
}

// OpenProject makes a saved project the live one. The location is updated
// before the document.
func (e *Editor) OpenProject(ctx context.Context, entry projects.Entry) error {
	doc, err := e.Index.Load(ctx, entry)
	if err != nil {
		return err
	}
	path := entry.Path
	if path == "/" {
		path = ""
	}
	if err := e.Binder.SetPath(path); err != nil {
		return err
	}
	e.Doc = doc
	return nil
}

// NewProject switches to path with an empty document and saves it under
// name.
func (e *Editor) NewProject(ctx context.Context, path, name string) error {
	if err := navigation.ValidatePath(path); err != nil {
		return err
	}
	switch _, err := e.Index.Load(ctx, projects.Entry{Path: navigation.NormalizePath(path)}); {
	case err == nil, errors.Is(err, projects.ErrMalformedStoredProject):
		return fmt.Errorf("project already exists at %s", navigation.Pathname(path))
	case !errors.Is(err, projects.ErrProjectNotFound):
		return err
	}
	if err := e.Binder.SetPath(path); err != nil {
		return err
	}
	e.Doc = document.Document{}
	return e.Index.Save(ctx, e.Path(), name, e.Doc)
}

func (e *Editor) alert(err error) {
	if e.Notifier == nil {
		return
	}
	if errors.Is(err, archive.ErrInvalidArchive) || errors.Is(err, fepack.ErrInvalidPack) {
		e.Notifier.Alert(e.Messages.Invalid)
	}
}
