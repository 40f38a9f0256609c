package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/entry"
	"github.com/jsphweid/chordex/match"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/quality"
	"github.com/jsphweid/chordex/util"
	"github.com/jsphweid/chordex/voicing"
	"github.com/spf13/cobra"
)

var (
	inversionFlag int
	octaveFlag    bool
	rootFlag      string
	limitFlag     int
)

func init() {
	voicingCmd.Flags().IntVarP(&inversionFlag, "inversion", "i", 0, "inversion to apply")
	voicingCmd.Flags().BoolVarP(&octaveFlag, "octave", "o", false, "raise the chord an octave")

	customCmd.Flags().IntVarP(&inversionFlag, "inversion", "i", 0, "inversion to apply")
	customCmd.Flags().StringVarP(&rootFlag, "root", "r", "", "designated root note")

	suggestCmd.Flags().IntVarP(&limitFlag, "limit", "n", 0, "maximum number of suggestions (default SUGGEST_LIMIT)")

	rootCmd.AddCommand(parseCmd, voicingCmd, customCmd, matchCmd, suggestCmd, transposeCmd, qualitiesCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <symbol>...",
	Short: "Parses chord symbols",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printParsed(cmd.OutOrStdout(), args)
	},
}

var voicingCmd = &cobra.Command{
	Use:   "voicing <symbol>",
	Short: "Prints the voicing of a chord symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSymbolVoicing(cmd.OutOrStdout(), args[0], inversionFlag, octaveFlag)
	},
}

var customCmd = &cobra.Command{
	Use:   "custom <note>...",
	Short: "Voices a chord from explicit notes",
	Long: `Voices a chord from explicit notes. Notes are MIDI numbers (64),
names with an octave (E4) or bare names (E, placed next to middle C).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCustomVoicing(cmd.OutOrStdout(), args, rootFlag, inversionFlag)
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <note>...",
	Short: "Lists the chords containing every given note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printMatches(cmd.OutOrStdout(), args)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Completes a partial chord symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := limitFlag
		if limit <= 0 {
			limit = constants.GetSuggestLimit()
		}
		for _, s := range match.Suggest(args[0], limit) {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <semitones> <symbol>...",
	Short: "Transposes chord symbols",
	Long: `Transposes chord symbols by a number of semitones. Put -- before
a negative amount: chordex transpose -- -3 C Am`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		semitones, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid semitones %q: %w", args[0], err)
		}
		return printTransposed(cmd.OutOrStdout(), semitones, args[1:])
	},
}

var qualitiesCmd = &cobra.Command{
	Use:   "qualities",
	Short: "Lists the chord vocabulary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQualities(cmd.OutOrStdout())
	},
}

func printParsed(w io.Writer, symbols []string) error {
	var failed int
	for _, s := range symbols {
		p, err := chord.Parse(s)
		if err != nil {
			fmt.Fprintf(w, "%q: unrecognized\n", s)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s: root=%s quality=%q (%s)\n", p.Symbol(), p.Root, p.Quality, quality.Describe(p.Quality))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols not recognized", failed, len(symbols))
	}
	return nil
}

func printSymbolVoicing(w io.Writer, symbol string, inversion int, octave bool) error {
	if inversion < 0 {
		return fmt.Errorf("%w: %d", voicing.ErrNegativeInversion, inversion)
	}
	e := entry.Symbolic{Symbol: strings.TrimSpace(symbol), Inversion: inversion, Octave: octave}
	v, err := entry.Resolve(e)
	if err != nil {
		return err
	}
	printVoicing(w, e.Symbol, v)
	return nil
}

func printCustomVoicing(w io.Writer, notes []string, root string, inversion int) error {
	if inversion < 0 {
		return fmt.Errorf("%w: %d", voicing.ErrNegativeInversion, inversion)
	}
	pitches, err := util.ParsePitches(notes)
	if err != nil {
		return err
	}
	var rootPitch *int
	if root != "" {
		p, err := util.ParsePitch(root)
		if err != nil {
			return err
		}
		rootPitch = &p
	}

	e := entry.NewCustom(pitches, rootPitch)
	e.Inversion = inversion
	v, err := entry.Resolve(e)
	if err != nil {
		return err
	}
	printVoicing(w, entry.Label(e), v)
	return nil
}

func printVoicing(w io.Writer, heading string, v voicing.Voicing) {
	fmt.Fprintln(w, heading)
	if v.IsEmpty() {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "  pitches:\t%s\n", joinInts(v.Pitches))
	fmt.Fprintf(tw, "  notes:\t%s\n", strings.Join(v.NoteNames(), " "))
	fmt.Fprintf(tw, "  root:\t%s (%d)\n", pitch.NoteName(v.RootPitch), v.RootPitch)
	fmt.Fprintf(tw, "  labels:\t%s\n", strings.Join(displayLabels(v.Labels), " "))
	fmt.Fprintf(tw, "  options:\t%s\n", strings.Join(voicing.InversionOptions(v.Len()), ", "))
	tw.Flush()
}

func printMatches(w io.Writer, notes []string) error {
	pitches, err := util.ParsePitches(notes)
	if err != nil {
		return err
	}
	matches := match.ChordsForPitches(pitches)
	if len(matches) == 0 {
		fmt.Fprintf(w, "no chords (need at least %d distinct pitch classes)\n", match.MinSize)
		return nil
	}
	fmt.Fprintln(w, strings.Join(matches, " "))
	return nil
}

func printTransposed(w io.Writer, semitones int, symbols []string) error {
	var failed int
	for _, s := range symbols {
		p, err := chord.Parse(s)
		if err != nil {
			fmt.Fprintf(w, "%q: unrecognized\n", s)
			failed++
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", p.Symbol(), p.Transpose(semitones).Symbol())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols not recognized", failed, len(symbols))
	}
	return nil
}

func printQualities(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUFFIX\tPATTERN\tDESCRIPTION")
	for _, k := range quality.Keys() {
		pattern, _ := quality.Pattern(k)
		suffix := string(k)
		if k == quality.Major {
			suffix = "(none)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", suffix, joinInts(pattern), quality.Describe(k))
	}
	return tw.Flush()
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

func displayLabels(labels []string) []string {
	res := make([]string, len(labels))
	for i, l := range labels {
		if l == "" {
			l = "-"
		}
		res[i] = l
	}
	return res
}
