package fepack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KaramelBytes/fronteditor-cli/internal/utils"
)

// FileTransport keeps packs in a local file. KeepPath makes loads report
// Replace so the caller leaves its location untouched.
type FileTransport struct {
	Path     string
	KeepPath bool
}

func (t FileTransport) Save(_ context.Context, p Pack) error {
	if dir := filepath.Dir(t.Path); dir != "" {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("ensure dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		return err
	}
	return utils.SafeWriteFile(t.Path, buf.Bytes())
}

func (t FileTransport) Load(_ context.Context) (Result, error) {
	b, err := os.ReadFile(t.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, fmt.Errorf("%w: %s does not exist", ErrInvalidPack, t.Path)
		}
		return Result{}, fmt.Errorf("read pack: %w", err)
	}
	p, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Result{}, err
	}
	return Result{Pack: p, Replace: t.KeepPath}, nil
}
