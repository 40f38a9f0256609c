package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/chord"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile loads and parses a standard MIDI file.
func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

// ReadMidi parses a standard MIDI file from r.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if msg, ok := recover().(string); ok {
			s = nil
			e = errors.New(msg)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing midi file: %w", err)
	}
	return res, nil
}

// ReadPitchSets returns the successive sets of sounding notes in a file.
func ReadPitchSets(filepath string) ([]chord.PitchSet, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	return chord.GetPitchSets(s)
}
