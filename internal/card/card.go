// Package card validates and navigates a Deluge SD-card filesystem layout:
// the three top-level folders KITS, SAMPLES, SYNTHS, patch-name numbering
// within them, and sample-path scoping relative to the card root.
package card

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/deluge-patch/internal/patchname"
)

// PatchType distinguishes which of the two patch folders/base names a card
// operation concerns.
type PatchType int

const (
	PatchTypeKit PatchType = iota
	PatchTypeSynth
)

func (t PatchType) folder() string {
	if t == PatchTypeSynth {
		return "SYNTHS"
	}
	return "KITS"
}

// BaseName returns the standard patch filename prefix for t ("KIT"/"SYNT").
func (t PatchType) BaseName() string {
	if t == PatchTypeSynth {
		return "SYNT"
	}
	return "KIT"
}

const (
	kitsDir    = "KITS"
	samplesDir = "SAMPLES"
	synthsDir  = "SYNTHS"
)

var requiredDirs = [...]string{kitsDir, samplesDir, synthsDir}

// Card is a validated SD-card root directory.
type Card struct {
	Root string
}

// Open validates that root exists and already contains all three required
// subdirectories.
func Open(root string) (*Card, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryDoesNotExistError{Path: root}
	}
	for _, name := range requiredDirs {
		sub := filepath.Join(root, name)
		info, err := os.Stat(sub)
		if err != nil || !info.IsDir() {
			return nil, &MissingRootDirectoryError{Name: name}
		}
	}
	return &Card{Root: root}, nil
}

// Create validates that root exists, then creates the three required
// subdirectories idempotently.
func Create(root string) (*Card, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &DirectoryDoesNotExistError{Path: root}
	}
	for _, name := range requiredDirs {
		sub := filepath.Join(root, name)
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return nil, &IoError{Msg: err.Error()}
		}
	}
	return &Card{Root: root}, nil
}

// NextStandardPatchName scans the type's folder for existing standard
// names, and returns base+(max+1) zero-padded to 3 digits, or base+"000"
// if none are present.
func (c *Card) NextStandardPatchName(t PatchType) (string, error) {
	dir := filepath.Join(c.Root, t.folder())
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &IoError{Msg: err.Error()}
	}

	base := t.BaseName()
	max := -1
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		n, err := patchname.Parse(stem)
		if err != nil || n.Base != base || n.Number == nil {
			continue
		}
		if *n.Number > max {
			max = *n.Number
		}
	}

	next := max + 1
	if next > 999 {
		return "", &NoMoreStandardNameError{}
	}
	return fmt.Sprintf("%s%03d", base, next), nil
}

// SamplePath strips abs to be relative to the card root, failing
// FileNotInCard if it is not prefixed by the root.
func (c *Card) SamplePath(abs string) (string, error) {
	rel, err := filepath.Rel(c.Root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", &FileNotInCardError{Path: abs}
	}
	return rel, nil
}

// sortedByNumber is a small helper kept for the scan-cache manifest, which
// wants a stable display order distinct from directory-read order.
func sortedByNumber(entries []string) []string {
	out := append([]string(nil), entries...)
	sort.Strings(out)
	return out
}
