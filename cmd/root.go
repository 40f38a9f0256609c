package cmd

import (
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/logger"
	"github.com/spf13/cobra"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

var (
	initLogs  = logger.Init
	flushLogs = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Chord symbols, voicings and reverse lookup",
	Long: `chordex parses chord symbols, builds concrete voicings with
inversions, finds the chords that contain a set of notes and
transposes chord lists. It also reads and writes MIDI files,
listens to a MIDI input and serves everything over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		constants.LoadEnv()
		flush, err := initLogs(constants.GetSentryDSN(), constants.GetEnvironment(), releaseVersion)
		if err != nil {
			logger.Warn("Sentry disabled", logger.Fields{"error": err.Error()})
		}
		flushLogs = flush
	},
}

// execute runs the root command and flushes pending Sentry events even
// when the command failed.
func execute() error {
	err := rootCmd.Execute()
	flushLogs()
	return err
}

func Execute() {
	cobra.CheckErr(execute())
}
