package card

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/deluge-patch/internal/patchname"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const manifestFileName = ".dlgctl-cache.json.gz"

// ManifestEntry records one patch file discovered by a scan.
type ManifestEntry struct {
	Path    string    `json:"path"`
	Type    PatchType `json:"patchType"`
	Name    string    `json:"name"`
	Number  *int      `json:"number,omitempty"`
	Suffix  string    `json:"suffix,omitempty"`
	ModTime time.Time `json:"modTime"`
}

// Manifest is the persisted result of scanning KITS and SYNTHS once.
type Manifest struct {
	Entries []ManifestEntry `json:"entries"`
}

// ScanCache walks KITS and SYNTHS, building a Manifest and persisting it to
// <root>/.dlgctl-cache.json.gz using the same jsoniter+gzip idiom the
// teacher uses for its own save file. The cache is advisory: a failure to
// write it is not returned as an error to the caller, since NextStandardPatchName
// and friends always re-scan the filesystem live regardless of its presence.
func (c *Card) ScanCache() (*Manifest, error) {
	var entries []ManifestEntry
	for _, t := range [...]PatchType{PatchTypeKit, PatchTypeSynth} {
		dir := filepath.Join(c.Root, t.folder())
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			return nil, &IoError{Msg: err.Error()}
		}
		for _, e := range dirEntries {
			if e.IsDir() {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			n, err := patchname.Parse(stem)
			if err != nil {
				continue
			}
			entries = append(entries, ManifestEntry{
				Path:    filepath.Join(dir, e.Name()),
				Type:    t,
				Name:    n.Base,
				Number:  n.Number,
				Suffix:  n.Suffix,
				ModTime: info.ModTime(),
			})
		}
	}

	m := &Manifest{Entries: entries}
	_ = c.writeManifestCache(m)
	return m, nil
}

func (c *Card) manifestPath() string {
	return filepath.Join(c.Root, manifestFileName)
}

func (c *Card) writeManifestCache(m *Manifest) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	file, err := os.Create(c.manifestPath())
	if err != nil {
		return err
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()
	_, err = gzWriter.Write(data)
	return err
}

// LoadManifestCache reads a previously persisted scan cache, if present. A
// missing or corrupt cache file is reported as an error; callers that treat
// the cache as advisory should fall back to ScanCache on failure rather
// than propagate it.
func (c *Card) LoadManifestCache() (*Manifest, error) {
	file, err := os.Open(c.manifestPath())
	if err != nil {
		return nil, &IoError{Msg: err.Error()}
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, &IoError{Msg: err.Error()}
	}
	defer gzReader.Close()

	data, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, &IoError{Msg: err.Error()}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &IoError{Msg: err.Error()}
	}
	return &m, nil
}

// Names returns the sorted list of patch base names recorded in the
// manifest, for display purposes.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		names[i] = e.Name
	}
	return sortedByNumber(names)
}
