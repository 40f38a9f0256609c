package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/match"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"github.com/spf13/cobra"
)

var (
	maxFilesFlag int
	summaryFlag  bool
)

func init() {
	scanCmd.Flags().IntVar(&maxFilesFlag, "max", 0, "maximum number of files to read from a directory")
	scanCmd.Flags().BoolVar(&summaryFlag, "summary", false, "print distinct chord keys with counts instead of a timeline")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <file.mid|dir>",
	Short: "Names the chords sounding in MIDI files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := util.GatherAllMidiPaths(args[0], maxFilesFlag)
		if err != nil {
			return err
		}
		for _, path := range paths {
			if err := scanFile(cmd.OutOrStdout(), path, summaryFlag); err != nil {
				logger.Error("Could not scan file", err, logger.Fields{"path": path})
			}
		}
		return nil
	},
}

func scanFile(w io.Writer, path string, summary bool) error {
	sets, err := midi.ReadPitchSets(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d pitch sets\n", path, len(sets))
	if summary {
		printSummary(w, sets)
		return nil
	}
	for _, set := range sets {
		names := make([]string, len(set.Notes))
		for i, n := range set.Notes {
			names[i] = pitch.NoteName(n)
		}
		fmt.Fprintf(w, "%9.3fs  %-24s %s\n",
			float64(set.Offset)/1e6, strings.Join(names, " "), strings.Join(match.ChordsForPitches(set.Notes), " "))
	}
	return nil
}

func printSummary(w io.Writer, sets []chord.PitchSet) {
	counts := make(map[string]int)
	for _, set := range sets {
		counts[chord.CreateChordKey(set.Notes)]++
	}
	for _, key := range util.GetKeys(counts) {
		fmt.Fprintf(w, "  %-24s %d\n", key, counts[key])
	}
}
