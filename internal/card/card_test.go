package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkCard(t *testing.T, withDirs bool) string {
	t.Helper()
	root := t.TempDir()
	if withDirs {
		for _, name := range requiredDirs {
			require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
		}
	}
	return root
}

func TestOpenMissingRoot(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	var target *DirectoryDoesNotExistError
	assert.ErrorAs(t, err, &target)
}

func TestOpenMissingOneRequiredDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, kitsDir), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, samplesDir), 0o755))
	// SYNTHS deliberately absent.
	_, err := Open(root)
	assert.Error(t, err)
	var target *MissingRootDirectoryError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "SYNTHS", target.Name)
}

func TestOpenSuccess(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)
	assert.Equal(t, root, c.Root)
}

func TestCreateIsIdempotent(t *testing.T) {
	root := t.TempDir()
	_, err := Create(root)
	require.NoError(t, err)
	_, err = Create(root)
	require.NoError(t, err)
	c, err := Open(root)
	require.NoError(t, err)
	assert.Equal(t, root, c.Root)
}

func TestNextStandardPatchNameEmpty(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)
	name, err := c.NextStandardPatchName(PatchTypeKit)
	require.NoError(t, err)
	assert.Equal(t, "KIT000", name)
}

func TestNextStandardPatchNameIncrements(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)
	for _, f := range []string{"KIT000.XML", "KIT004.XML", "KIT002b.XML", "notkit.xml"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, kitsDir, f), []byte("x"), 0o644))
	}
	name, err := c.NextStandardPatchName(PatchTypeKit)
	require.NoError(t, err)
	assert.Equal(t, "KIT005", name)
}

func TestSamplePathScopesToRoot(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)

	abs := filepath.Join(root, samplesDir, "kick.wav")
	rel, err := c.SamplePath(abs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(samplesDir, "kick.wav"), rel)
}

func TestSamplePathRejectsOutsideRoot(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "kick.wav")
	_, err = c.SamplePath(outside)
	assert.Error(t, err)
	var target *FileNotInCardError
	assert.ErrorAs(t, err, &target)
}

func TestScanCacheRoundTrip(t *testing.T) {
	root := mkCard(t, true)
	c, err := Open(root)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, kitsDir, "KIT001.XML"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, synthsDir, "SYNT002.XML"), []byte("x"), 0o644))

	m, err := c.ScanCache()
	require.NoError(t, err)
	assert.Len(t, m.Entries, 2)

	loaded, err := c.LoadManifestCache()
	require.NoError(t, err)
	assert.Len(t, loaded.Entries, 2)
}
