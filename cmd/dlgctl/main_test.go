package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/serialization"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "dlgctl"}
	root.AddCommand(newCardCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newBrowseCmd())
	return root
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newTestRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCardCreateThenOpenThenNextName(t *testing.T) {
	root := t.TempDir()

	out, err := runCLI(t, "card", "create", root)
	require.NoError(t, err)
	assert.Contains(t, out, "created Deluge card layout")

	out, err = runCLI(t, "card", "open", root)
	require.NoError(t, err)
	assert.Contains(t, out, "is a valid Deluge card")

	out, err = runCLI(t, "card", "next-name", root, "kit")
	require.NoError(t, err)
	assert.Contains(t, out, "KIT000")
}

func TestCardOpenFailsOnMissingLayout(t *testing.T) {
	root := t.TempDir()
	_, err := runCLI(t, "card", "open", root)
	assert.Error(t, err)
}

func TestPatchInfoReportsSynthSummary(t *testing.T) {
	dir := t.TempDir()
	xml, err := serialization.SaveSynth(patch.Synth{Sound: patch.NewSubtractiveSound()})
	require.NoError(t, err)
	file := filepath.Join(dir, "SYNT001.XML")
	require.NoError(t, os.WriteFile(file, []byte(xml), 0o644))

	out, err := runCLI(t, "patch", "info", file)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: synth")
	assert.Contains(t, out, "mode: subtractive")
}

func TestPatchUpgradeRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	v3XML, err := serialization.SaveSynth(patch.Synth{Sound: patch.NewSubtractiveSound()})
	require.NoError(t, err)
	file := filepath.Join(dir, "SYNT001.XML")
	require.NoError(t, os.WriteFile(file, []byte(v3XML), 0o644))

	_, err = runCLI(t, "patch", "upgrade", file)
	require.NoError(t, err)

	rewritten, err := os.ReadFile(file)
	require.NoError(t, err)
	_, info, err := serialization.LoadSynthWithVersion(string(rewritten))
	require.NoError(t, err)
	assert.Equal(t, serialization.Version3, info.Format)
}

func TestPatchRewriteSamplesAppliesMapping(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "patch.xml")
	src := `<sample><fileName>SAMPLES/kick.wav</fileName></sample>`
	require.NoError(t, os.WriteFile(file, []byte(src), 0o644))

	_, err := runCLI(t, "patch", "rewrite-samples", file, "--map", "SAMPLES/kick.wav=SAMPLES/kick2.wav")
	require.NoError(t, err)

	rewritten, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(rewritten), "SAMPLES/kick2.wav")
}
