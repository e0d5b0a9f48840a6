// Package vault provides access to a directory of markdown notes: note
// enumeration, fenced stat-block extraction, cursor-position insertion, and
// a change watcher.
package vault

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a named note does not exist.
var ErrNotFound = errors.New("note not found")

// Vault is a markdown note directory.
type Vault struct {
	root string
}

// Open validates that root is a directory and returns a Vault over it.
func Open(root string) (*Vault, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("opening vault %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening vault %s: not a directory", root)
	}
	return &Vault{root: root}, nil
}

// Root returns the vault's root directory.
func (v *Vault) Root() string {
	return v.root
}

// Notes returns the vault-relative paths of all markdown notes, in walk
// order. Dot-directories (e.g. .obsidian) are skipped.
func (v *Vault) Notes() ([]string, error) {
	var notes []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != v.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return err
		}
		notes = append(notes, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault: %w", err)
	}
	return notes, nil
}

// path resolves a vault-relative note name, rejecting escapes from the root.
func (v *Vault) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("note name %q escapes the vault", name)
	}
	return filepath.Join(v.root, clean), nil
}

// Read returns the contents of a note.
func (v *Vault) Read(name string) ([]byte, error) {
	p, err := v.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return data, err
}

// Write replaces the contents of a note, creating it if needed.
func (v *Vault) Write(name string, data []byte) error {
	p, err := v.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

// Modified returns the note's modification time.
func (v *Vault) Modified(name string) (os.FileInfo, error) {
	p, err := v.path(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return info, err
}

// InsertAt splices text into a note at a 0-based line/column position,
// the cursor-insertion mechanism behind the block commands. A column past the
// end of its line clamps to the line end; a line past the end of the note
// clamps to the end of the note.
func (v *Vault) InsertAt(name string, line, col int, text string) error {
	data, err := v.Read(name)
	if err != nil {
		return err
	}

	offset := insertOffset(data, line, col)
	spliced := make([]byte, 0, len(data)+len(text))
	spliced = append(spliced, data[:offset]...)
	spliced = append(spliced, text...)
	spliced = append(spliced, data[offset:]...)

	return v.Write(name, spliced)
}

// insertOffset converts a line/column position to a byte offset, clamping
// out-of-range positions.
func insertOffset(data []byte, line, col int) int {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	offset := 0
	for line > 0 && offset < len(data) {
		next := bytes.IndexByte(data[offset:], '\n')
		if next < 0 {
			return len(data)
		}
		offset += next + 1
		line--
	}
	for col > 0 && offset < len(data) && data[offset] != '\n' {
		offset++
		col--
	}
	return offset
}
