package editor_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/fronteditor-cli/internal/archive"
	"github.com/KaramelBytes/fronteditor-cli/internal/document"
	"github.com/KaramelBytes/fronteditor-cli/internal/store"
)

// failingSetStore rejects every write.
type failingSetStore struct {
	*store.MemoryStore
	err error
}

func (s *failingSetStore) Set(_ context.Context, _, _ string) error {
	return s.err
}

func rezip(t *testing.T, fields document.Fields) []byte {
	t.Helper()
	files := map[string]string{}
	for f, text := range fields {
		files[archive.EntryName(f)] = text
	}
	return rezipNames(t, files)
}

func rezipNames(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = io.WriteString(w, content)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
