// Command dlgctl inspects and rewrites Synthstrom Deluge patch files and the
// SD-card layout they live on.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	root := &cobra.Command{
		Use:   "dlgctl",
		Short: "Inspect and rewrite Synthstrom Deluge patch files",
	}

	root.AddCommand(newCardCmd())
	root.AddCommand(newPatchCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newBrowseCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
