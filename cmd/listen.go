package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/match"
	"github.com/jsphweid/chordex/pitch"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var inPortFlag int

func init() {
	listenCmd.Flags().IntVarP(&inPortFlag, "port", "p", -1, "MIDI input port number (default MIDI_IN_PORT)")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chord held on a MIDI keyboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := inPortFlag
		if port < 0 {
			port = constants.GetMidiInPort()
		}
		return listen(cmd, port)
	},
}

// heldNotes is the set of keys currently down on the input.
type heldNotes struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeldNotes() *heldNotes {
	return &heldNotes{keys: make(map[uint8]bool)}
}

func (h *heldNotes) Press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys[key] = true
}

func (h *heldNotes) Release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.keys, key)
}

// Pitches returns the held keys in ascending order.
func (h *heldNotes) Pitches() []int {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]int, 0, len(h.keys))
	for k := range h.keys {
		res = append(res, int(k))
	}
	sort.Ints(res)
	return res
}

func reportHeld(w io.Writer, pitches []int) {
	if len(pitches) == 0 {
		return
	}
	names := make([]string, len(pitches))
	for i, p := range pitches {
		names[i] = pitch.NoteName(p)
	}
	matches := match.ChordsForPitches(pitches)
	if len(matches) == 0 {
		fmt.Fprintf(w, "%s\n", strings.Join(names, " "))
		return
	}
	fmt.Fprintf(w, "%s: %s\n", strings.Join(names, " "), strings.Join(matches, " "))
}

func listen(cmd *cobra.Command, port int) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return fmt.Errorf("can't find MIDI input %d: %w", port, err)
	}

	held := newHeldNotes()
	out := cmd.OutOrStdout()
	debounced := debounce.New(constants.GetListenDebounce())
	lookup := func() { reportHeld(out, held.Pitches()) }

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.Press(key)
			debounced(lookup)
		case msg.GetNoteEnd(&ch, &key):
			held.Release(key)
			debounced(lookup)
		default:
			// ignore
		}
	})
	if err != nil {
		return fmt.Errorf("could not listen to MIDI input: %w", err)
	}
	defer stop()

	logger.Info("Listening for MIDI input", logger.Fields{"port": in.String()})
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	<-ctx.Done()
	return nil
}
