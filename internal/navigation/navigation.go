package navigation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPath indicates a project path that cannot be shown as a location.
var ErrInvalidPath = errors.New("invalid project path")

// History is the addressable location of the editor. ReplaceState swaps the
// current entry; there is no push and no reload.
type History interface {
	Pathname() string
	ReplaceState(pathname string) error
}

// NormalizePath strips the leading slash of a project path. The root
// project normalizes to the empty string.
func NormalizePath(p string) string {
	return strings.TrimPrefix(p, "/")
}

// Pathname returns the location shown for a project path.
func Pathname(p string) string {
	return "/" + NormalizePath(p)
}

// ValidatePath rejects paths that would not survive as a URL path.
func ValidatePath(p string) error {
	for _, r := range p {
		if r == '?' || r == '#' || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	return nil
}

// Binder keeps the visible location in sync with the active project.
type Binder struct {
	history History
}

func NewBinder(h History) *Binder {
	return &Binder{history: h}
}

// SetPath replaces the current location with "/" + NormalizePath(p). Setting
// the location already shown is a no-op.
func (b *Binder) SetPath(p string) error {
	if err := ValidatePath(p); err != nil {
		return err
	}
	target := Pathname(p)
	if b.history.Pathname() == target {
		return nil
	}
	if err := b.history.ReplaceState(target); err != nil {
		return fmt.Errorf("replace location: %w", err)
	}
	return nil
}

// Path returns the normalized project path of the current location.
func (b *Binder) Path() string {
	return NormalizePath(b.history.Pathname())
}

// Pathname returns the current location as shown.
func (b *Binder) Pathname() string {
	p := b.history.Pathname()
	if p == "" {
		return "/"
	}
	return p
}
