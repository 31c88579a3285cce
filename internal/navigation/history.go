package navigation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
)

// MemoryHistory keeps the location in memory. Replacements counts calls
// that actually changed the location.
type MemoryHistory struct {
	pathname     string
	Replacements int
}

func NewMemoryHistory(pathname string) *MemoryHistory {
	if pathname == "" {
		pathname = "/"
	}
	return &MemoryHistory{pathname: pathname}
}

func (h *MemoryHistory) Pathname() string { return h.pathname }

func (h *MemoryHistory) ReplaceState(pathname string) error {
	h.pathname = pathname
	h.Replacements++
	return nil
}

// FileHistory persists the location in a small state file so that it
// survives between command invocations.
type FileHistory struct {
	path     string
	pathname string
}

// OpenFileHistory reads the location stored at path. A missing file means
// the root location.
func OpenFileHistory(path string) (*FileHistory, error) {
	h := &FileHistory{path: path, pathname: "/"}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return h, nil
		}
		return nil, fmt.Errorf("read location: %w", err)
	}
	if p := strings.TrimSpace(string(b)); p != "" {
		h.pathname = p
	}
	return h, nil
}

func (h *FileHistory) Pathname() string { return h.pathname }

func (h *FileHistory) ReplaceState(pathname string) error {
	if err := utils.EnsureDir(filepath.Dir(h.path)); err != nil {
		return fmt.Errorf("ensure state dir: %w", err)
	}
	if err := utils.SafeWriteFile(h.path, []byte(pathname+"\n")); err != nil {
		return err
	}
	h.pathname = pathname
	return nil
}
