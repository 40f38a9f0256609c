package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PitchClass is one of the 12 octave-equivalent pitch classes, 0 (C) to 11 (B).
type PitchClass int

const OctaveSize = 12

// Names is the canonical sharp-spelled name of every pitch class.
var Names = [OctaveSize]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Enharmonic maps the supported flat spellings to their sharp equivalent.
var Enharmonic = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var ErrInvalidNoteName = errors.New("invalid note name")

var nameToIndex = func() map[string]PitchClass {
	res := make(map[string]PitchClass, OctaveSize)
	for i, name := range Names {
		res[name] = PitchClass(i)
	}
	return res
}()

// NormalizeRoot collapses whitespace and re-cases a root spelling to
// Letter+accidental, e.g. "c #" -> "C#".
func NormalizeRoot(name string) string {
	name = strings.Join(strings.Fields(name), "")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// NameToPitchClass resolves a root spelling such as "C#", "db" or "E" to its
// pitch class. The letter is case-insensitive, the accidental is not.
func NameToPitchClass(name string) (PitchClass, bool) {
	name = NormalizeRoot(name)
	if sharp, ok := Enharmonic[name]; ok {
		name = sharp
	}
	pc, ok := nameToIndex[name]
	return pc, ok
}

// PitchClassToName returns the canonical name, wrapping out of range values.
func PitchClassToName(pc PitchClass) string {
	return Names[pc.Normalize()]
}

func (pc PitchClass) Normalize() PitchClass {
	return PitchClass(mod(int(pc), OctaveSize))
}

// Transpose shifts the pitch class by n semitones, wrapping modulo 12.
func (pc PitchClass) Transpose(n int) PitchClass {
	return PitchClass(mod(int(pc)+n, OctaveSize))
}

func (pc PitchClass) String() string {
	return PitchClassToName(pc)
}

// Of returns the pitch class of an absolute (MIDI) pitch.
func Of(midi int) PitchClass {
	return PitchClass(mod(midi, OctaveSize))
}

// Octave returns the scientific octave number of a MIDI pitch, C4 = 60.
func Octave(midi int) int {
	return floorDiv(midi, OctaveSize) - 1
}

// NoteName formats a MIDI pitch as name plus octave, e.g. 61 -> "C#4".
func NoteName(midi int) string {
	return fmt.Sprintf("%s%d", PitchClassToName(Of(midi)), Octave(midi))
}

// DisplayName is NoteName with a typographic sharp sign.
func DisplayName(midi int) string {
	return strings.Replace(NoteName(midi), "#", "♯", 1)
}

// NoteNameToMIDI converts a note name like "E1", "C4", "F#3", "Bb2" to a MIDI
// note number. The octave runs from -1 to 9 and C4 = 60.
func NoteNameToMIDI(noteName string) (int, error) {
	noteName = strings.TrimSpace(noteName)
	if len(noteName) < 2 {
		return 0, fmt.Errorf("%w: %q is too short", ErrInvalidNoteName, noteName)
	}

	idx := 1
	if noteName[idx] == '#' || noteName[idx] == 'b' {
		idx++
	}
	pc, ok := NameToPitchClass(noteName[:idx])
	if !ok {
		return 0, fmt.Errorf("%w: unknown pitch %q", ErrInvalidNoteName, noteName[:idx])
	}
	if idx >= len(noteName) {
		return 0, fmt.Errorf("%w: missing octave in %q", ErrInvalidNoteName, noteName)
	}

	octave, err := strconv.Atoi(noteName[idx:])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid octave in %q", ErrInvalidNoteName, noteName)
	}
	if octave < -1 || octave > 9 {
		return 0, fmt.Errorf("%w: octave %d out of range", ErrInvalidNoteName, octave)
	}

	midi := (octave+1)*OctaveSize + int(pc)
	if !InRange(midi) {
		return 0, fmt.Errorf("%w: %q is outside the MIDI range", ErrInvalidNoteName, noteName)
	}
	return midi, nil
}

func InRange(midi int) bool {
	return midi >= 0 && midi <= 127
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && a < 0 {
		q--
	}
	return q
}
