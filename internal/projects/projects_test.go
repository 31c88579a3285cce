package projects_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/projects"
	"github.com/KaramelBytes/fronteditor-cli/internal/store"
)

func TestListDerivesEntriesFromKeys(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "fronteditor:abc", `{"html":"x"}`))
	require.NoError(t, s.Set(ctx, "fronteditor:named", `{"name":"My Site","path":"custom","html":""}`))
	require.NoError(t, s.Set(ctx, "fronteditor:", `{"css":"root"}`))
	require.NoError(t, s.Set(ctx, "unrelated:abc", `{"html":"y"}`))

	entries, err := projects.NewIndex(s).List(ctx)
	require.NoError(t, err)
	require.Equal(t, []projects.Entry{
		{Name: "abc", Path: "abc"},
		{Name: "My Site", Path: "custom"},
		{Name: "/", Path: ""},
	}, entries)
}

func TestListKeepsUnparseableRecordsVisible(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "fronteditor:broken", `{not json`))

	entries, err := projects.NewIndex(s).List(ctx)
	require.NoError(t, err)
	require.Equal(t, []projects.Entry{{Name: "broken", Path: "broken"}}, entries)
}

func TestLoadExtractsDocumentFields(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "fronteditor:demo",
		`{"name":"Demo","path":"demo","html":"<p>h</p>","css":"c","javascript":"j","markdown":"m","extra":1}`))

	doc, err := projects.NewIndex(s).Load(ctx, projects.Entry{Name: "Demo", Path: "demo"})
	require.NoError(t, err)
	require.Equal(t, document.Document{Markup: "<p>h</p>", Style: "c", Script: "j", Notes: "m"}, doc)
}

func TestLoadRootPath(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "fronteditor:", `{"html":"root"}`))

	doc, err := projects.NewIndex(s).Load(ctx, projects.Entry{Name: "/", Path: "/"})
	require.NoError(t, err)
	require.Equal(t, "root", doc.Markup)
	require.Empty(t, doc.Style)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, "fronteditor:bad", `{not json`))
	require.NoError(t, s.Set(ctx, "fronteditor:list", `[1,2]`))
	require.NoError(t, s.Set(ctx, "fronteditor:null", `null`))
	require.NoError(t, s.Set(ctx, "fronteditor:typed", `{"html":42}`))
	idx := projects.NewIndex(s)

	for _, p := range []string{"bad", "list", "null", "typed"} {
		_, err := idx.Load(ctx, projects.Entry{Path: p})
		require.ErrorIs(t, err, projects.ErrMalformedStoredProject, p)
	}
	_, err := idx.Load(ctx, projects.Entry{Path: "missing"})
	require.ErrorIs(t, err, projects.ErrProjectNotFound)
}

func TestSaveWritesRecordAndKeepsName(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	idx := projects.NewIndex(s)
	doc := document.Document{Markup: "<b>1</b>", Notes: "n"}

	require.NoError(t, idx.Save(ctx, "/site", "Site", doc))
	require.NoError(t, idx.Save(ctx, "site", "", document.Document{Markup: "<b>2</b>"}))

	raw, err := s.Get(ctx, "fronteditor:site")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Equal(t, "Site", got["name"])
	require.Equal(t, "site", got["path"])
	require.Equal(t, "<b>2</b>", got["html"])
	require.Equal(t, "", got["markdown"])

	entries, err := idx.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []projects.Entry{{Name: "Site", Path: "site"}}, entries)
}

func TestSaveRootOmitsPath(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	idx := projects.NewIndex(s)
	require.NoError(t, idx.Save(ctx, "/", "", document.Document{Style: "s"}))

	raw, err := s.Get(ctx, "fronteditor:")
	require.NoError(t, err)
	require.JSONEq(t, `{"html":"","css":"s","javascript":"","markdown":""}`, raw)

	entries, err := idx.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []projects.Entry{{Name: "/", Path: ""}}, entries)
}

func TestRemoveAndFind(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	idx := projects.NewIndex(s)
	require.NoError(t, idx.Save(ctx, "one", "First", document.Document{}))
	require.NoError(t, idx.Save(ctx, "two", "", document.Document{}))

	e, err := idx.Find(ctx, "/two")
	require.NoError(t, err)
	require.Equal(t, projects.Entry{Name: "two", Path: "two"}, e)

	e, err = idx.Find(ctx, "First")
	require.NoError(t, err)
	require.Equal(t, "one", e.Path)

	_, err = idx.Find(ctx, "three")
	require.ErrorIs(t, err, projects.ErrProjectNotFound)

	require.NoError(t, idx.Remove(ctx, "/one"))
	require.ErrorIs(t, idx.Remove(ctx, "one"), projects.ErrProjectNotFound)
	entries, err := idx.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
