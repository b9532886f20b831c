package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/deluge-patch/internal/midipreview"
	"github.com/schollz/deluge-patch/internal/patch"
	"github.com/schollz/deluge-patch/internal/serialization"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var port string
	var row int
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Play a kit's MIDI row out a host MIDI port to audition its channel/note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			kit, err := serialization.LoadKit(string(raw))
			if err != nil {
				return err
			}
			if row < 0 || row >= len(kit.Rows) {
				return fmt.Errorf("row %d out of range (kit has %d rows)", row, len(kit.Rows))
			}
			midiRow, ok := kit.Rows[row].(patch.MidiRow)
			if !ok {
				return fmt.Errorf("row %d is not a MIDI row", row)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "row %d: channel %d, note %s\n",
				row, midiRow.Channel, midipreview.NoteName(midiRow.Note))

			out, err := midipreview.OpenPort(port)
			if err != nil {
				return err
			}
			return midipreview.PlayRow(out, midiRow, duration)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "MIDI output port name (exact or substring match)")
	cmd.Flags().IntVar(&row, "row", 0, "kit row index to preview")
	cmd.Flags().DurationVar(&duration, "duration", 250*time.Millisecond, "note-on duration")
	return cmd
}
