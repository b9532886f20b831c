package main

import (
	"github.com/schollz/deluge-patch/internal/browser"
	"github.com/schollz/deluge-patch/internal/card"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse PATH",
		Short: "Browse a card's KITS/SYNTHS patches in a read-only TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := card.Open(args[0])
			if err != nil {
				return err
			}
			return browser.Run(c)
		},
	}
}
