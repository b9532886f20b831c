package browser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schollz/deluge-patch/internal/card"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/serialization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatch(t *testing.T, c *card.Card, dir, name string, xml string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(c.Root, dir, name), []byte(xml), 0o644))
}

func TestScanFindsKitsAndSynths(t *testing.T) {
	root := t.TempDir()
	c, err := card.Create(root)
	require.NoError(t, err)

	synthXML, err := serialization.SaveSynth(patch.Synth{Sound: patch.NewSubtractiveSound()})
	require.NoError(t, err)
	kitXML, err := serialization.SaveKit(patch.NewKit())
	require.NoError(t, err)

	writePatch(t, c, "SYNTHS", "SYNT001.XML", synthXML)
	writePatch(t, c, "KITS", "KIT001.XML", kitXML)

	items, err := Scan(c)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var names []string
	for _, it := range items {
		names = append(names, it.(entry).name)
	}
	assert.ElementsMatch(t, []string{"SYNT001.XML", "KIT001.XML"}, names)
}

func TestSummarizeDescribesSynth(t *testing.T) {
	root := t.TempDir()
	c, err := card.Create(root)
	require.NoError(t, err)

	xml, err := serialization.SaveSynth(patch.Synth{Sound: patch.NewSubtractiveSound()})
	require.NoError(t, err)
	writePatch(t, c, "SYNTHS", "SYNT001.XML", xml)

	summary, err := Summarize(c, entry{name: "SYNT001.XML", path: filepath.Join("SYNTHS", "SYNT001.XML"), typ: card.PatchTypeSynth})
	require.NoError(t, err)
	assert.Contains(t, summary, "subtractive")
	assert.Contains(t, summary, "poly")
}

func TestSummarizeDescribesKitRowCount(t *testing.T) {
	root := t.TempDir()
	c, err := card.Create(root)
	require.NoError(t, err)

	k := patch.NewKit()
	k.Rows = []patch.Row{
		patch.SoundRow{Sound: patch.NewSubtractiveSound(), DisplayName: "KICK"},
		patch.MidiRow{Channel: 1, Note: 36},
	}
	xml, err := serialization.SaveKit(k)
	require.NoError(t, err)
	writePatch(t, c, "KITS", "KIT001.XML", xml)

	summary, err := Summarize(c, entry{name: "KIT001.XML", path: filepath.Join("KITS", "KIT001.XML"), typ: card.PatchTypeKit})
	require.NoError(t, err)
	assert.Contains(t, summary, "2 rows")
}
