package midi

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/voicing"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const TicksPerQuarter = 960

type ExportOpts struct {
	BPM           float64
	BeatsPerChord int
	Velocity      uint8
	Channel       uint8
	TrackName     string
}

func (o ExportOpts) withDefaults() ExportOpts {
	if o.BPM <= 0 {
		o.BPM = 120
	}
	if o.BeatsPerChord <= 0 {
		o.BeatsPerChord = 4
	}
	if o.Velocity == 0 {
		o.Velocity = 100
	}
	if o.TrackName == "" {
		o.TrackName = "chordex"
	}
	return o
}

// CreateSMF lays the voicings out one after another, each held for
// BeatsPerChord beats. An empty voicing becomes a rest.
func CreateSMF(voicings []voicing.Voicing, opts ExportOpts) (*smf.SMF, error) {
	opts = opts.withDefaults()

	res := smf.New()
	ticks := smf.MetricTicks(TicksPerQuarter)
	res.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName(opts.TrackName))
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(opts.BPM))

	length := ticks.Ticks4th() * uint32(opts.BeatsPerChord)
	var pending uint32
	for i, v := range voicings {
		var keys []uint8
		for _, p := range v.Pitches {
			if !pitch.InRange(p) {
				return nil, fmt.Errorf("chord %d: pitch %d is outside the MIDI range", i+1, p)
			}
			keys = append(keys, uint8(p))
		}

		if len(keys) == 0 {
			pending += length
			continue
		}

		for j, key := range keys {
			delta := uint32(0)
			if j == 0 {
				delta = pending
			}
			track.Add(delta, midi.NoteOn(opts.Channel, key, opts.Velocity))
		}
		for j, key := range keys {
			delta := uint32(0)
			if j == 0 {
				delta = length
			}
			track.Add(delta, midi.NoteOff(opts.Channel, key))
		}
		pending = 0
	}
	track.Close(pending)

	if err := res.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}
	return res, nil
}

// WriteSMF encodes the voicings as a standard MIDI file to w.
func WriteSMF(w io.Writer, voicings []voicing.Voicing, opts ExportOpts) error {
	s, err := CreateSMF(voicings, opts)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

// WriteMidiFile is WriteSMF into a new file at path.
func WriteMidiFile(path string, voicings []voicing.Voicing, opts ExportOpts) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer f.Close()

	if err := WriteSMF(f, voicings, opts); err != nil {
		return err
	}
	return f.Close()
}
