package voicing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/quality"
)

// ReferencePitch is the MIDI pitch symbolic chords are built from (C4).
const ReferencePitch = 60

var (
	ErrUnknownQuality    = errors.New("unknown chord quality")
	ErrNegativeInversion = errors.New("inversion must not be negative")
)

// Voicing is a concrete, octave-aware arrangement of a chord.
type Voicing struct {
	// ascending absolute pitches
	Pitches []int `json:"pitches"`
	// the pitch marked as the chord root in this arrangement
	RootPitch int `json:"rootPitch"`
	// interval label per pitch, aligned with Pitches
	Labels []string `json:"intervalLabels"`
	// pattern offset each pitch was built from; nil for custom chords
	Intervals []int `json:"intervals,omitempty"`
}

type note struct {
	midi     int
	interval int
}

// Build expands root and quality into a voicing at the reference register,
// rotated inversion times and optionally raised an octave.
func Build(root pitch.PitchClass, q quality.Key, inversion int, octaveUp bool) (Voicing, error) {
	pattern, ok := quality.Pattern(q)
	if !ok {
		return Voicing{}, fmt.Errorf("%w: %q", ErrUnknownQuality, q)
	}
	if inversion < 0 {
		return Voicing{}, fmt.Errorf("%w: %d", ErrNegativeInversion, inversion)
	}

	origRoot := ReferencePitch + int(root.Normalize())
	notes := make([]note, len(pattern))
	for i, interval := range pattern {
		notes[i] = note{midi: origRoot + interval, interval: interval}
	}

	notes = invert(notes, inversion)

	if octaveUp {
		for i := range notes {
			notes[i].midi += pitch.OctaveSize
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].midi < notes[j].midi
	})

	v := Voicing{
		Pitches:   make([]int, len(notes)),
		Labels:    make([]string, len(notes)),
		Intervals: make([]int, len(notes)),
	}
	for i, n := range notes {
		v.Pitches[i] = n.midi
		v.Intervals[i] = n.interval
		v.Labels[i] = labelFor(n.midi-origRoot, n.interval)
	}
	v.RootPitch = pickRoot(v.Pitches, pitch.Of(origRoot))
	return v, nil
}

// FromParsed builds the voicing of an already parsed chord.
func FromParsed(p chord.ParsedChord, inversion int, octaveUp bool) (Voicing, error) {
	return Build(p.Root, p.Quality, inversion, octaveUp)
}

// invert takes the note at the bottom of the sequence, raises it an octave
// and puts it on top, once per inversion. The rest keep their order, so a
// full cycle lands every note exactly one octave up.
func invert(notes []note, inversion int) []note {
	if len(notes) == 0 {
		return notes
	}
	res := make([]note, len(notes))
	copy(res, notes)
	for i := 0; i < inversion; i++ {
		n := res[0]
		n.midi += pitch.OctaveSize
		res = append(res[1:], n)
	}
	return res
}

// pickRoot returns the highest pitch sharing the root's pitch class, falling
// back to the lowest pitch.
func pickRoot(pitches []int, root pitch.PitchClass) int {
	for i := len(pitches) - 1; i >= 0; i-- {
		if pitch.Of(pitches[i]) == root {
			return pitches[i]
		}
	}
	if len(pitches) == 0 {
		return 0
	}
	return pitches[0]
}

// NormalizeInversion wraps an inversion count into [0, noteCount).
func NormalizeInversion(inversion, noteCount int) int {
	if noteCount <= 0 {
		return 0
	}
	return ((inversion % noteCount) + noteCount) % noteCount
}

func (v Voicing) Len() int {
	return len(v.Pitches)
}

func (v Voicing) IsEmpty() bool {
	return len(v.Pitches) == 0
}

// NoteNames returns the name with octave of every pitch, e.g. "E4".
func (v Voicing) NoteNames() []string {
	res := make([]string, len(v.Pitches))
	for i, p := range v.Pitches {
		res[i] = pitch.NoteName(p)
	}
	return res
}

// PitchClasses returns the pitch class of every pitch, duplicates kept.
func (v Voicing) PitchClasses() []pitch.PitchClass {
	res := make([]pitch.PitchClass, len(v.Pitches))
	for i, p := range v.Pitches {
		res[i] = pitch.Of(p)
	}
	return res
}

// InversionOptions lists the choices offered for a chord with noteCount
// notes: every inversion followed by the octave shift.
func InversionOptions(noteCount int) []string {
	maxInv := noteCount - 1
	if maxInv < 0 {
		maxInv = 0
	}
	res := make([]string, 0, maxInv+2)
	for i := 0; i <= maxInv; i++ {
		res = append(res, fmt.Sprintf("Inv %d", i))
	}
	return append(res, "Octave +1")
}
