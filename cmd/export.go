package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/entry"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/voicing"
	"github.com/spf13/cobra"
)

var (
	bpmFlag   float64
	beatsFlag int
)

func init() {
	exportCmd.Flags().Float64Var(&bpmFlag, "bpm", 0, "tempo (default EXPORT_BPM)")
	exportCmd.Flags().IntVar(&beatsFlag, "beats", 4, "beats per chord")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <out.mid> <symbol>...",
	Short: "Writes a chord progression as a MIDI file",
	Long: `Writes a chord progression as a standard MIDI file, one chord
after another. Symbols may also be given as a comma separated list.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bpm := bpmFlag
		if bpm <= 0 {
			bpm = constants.GetExportBPM()
		}
		list, err := buildList(args[1:])
		if err != nil {
			return err
		}
		if err := exportList(args[0], list, midi.ExportOpts{BPM: bpm, BeatsPerChord: beatsFlag}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d chords to %s\n", len(list), args[0])
		return nil
	},
}

func buildList(symbols []string) (entry.List, error) {
	list, errs := entry.List{}.AddFromInput(strings.Join(symbols, ","))
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return list, nil
}

func exportList(path string, list entry.List, opts midi.ExportOpts) error {
	resolved := list.Resolve()
	voicings := make([]voicing.Voicing, len(resolved))
	for i, r := range resolved {
		if r.Err != nil {
			return fmt.Errorf("chord %d (%s): %w", i+1, entry.Label(r.Entry), r.Err)
		}
		voicings[i] = r.Voicing
	}

	if err := midi.WriteMidiFile(path, voicings, opts); err != nil {
		logger.Error("Export failed", err, logger.Fields{"path": path})
		return err
	}
	return nil
}
