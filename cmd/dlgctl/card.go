package main

import (
	"fmt"

	"github.com/schollz/deluge-patch/internal/card"
	"github.com/spf13/cobra"
)

func newCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Validate and manage a Deluge SD-card layout",
	}
	cmd.AddCommand(newCardOpenCmd())
	cmd.AddCommand(newCardCreateCmd())
	cmd.AddCommand(newCardNextNameCmd())
	return cmd
}

func newCardOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open PATH",
		Short: "Validate that PATH already has the KITS/SAMPLES/SYNTHS layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := card.Open(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid Deluge card\n", args[0])
			return nil
		},
	}
}

func newCardCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create PATH",
		Short: "Create the KITS/SAMPLES/SYNTHS layout under PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := card.Create(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created Deluge card layout at %s\n", args[0])
			return nil
		},
	}
}

func newCardNextNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next-name PATH {kit|synth}",
		Short: "Print the next standard patch name for the given type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := card.Open(args[0])
			if err != nil {
				return err
			}

			var patchType card.PatchType
			switch args[1] {
			case "kit":
				patchType = card.PatchTypeKit
			case "synth":
				patchType = card.PatchTypeSynth
			default:
				return fmt.Errorf("unknown patch type %q, want kit or synth", args[1])
			}

			name, err := c.NextStandardPatchName(patchType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
