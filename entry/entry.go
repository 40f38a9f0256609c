package entry

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/quality"
	"github.com/jsphweid/chordex/voicing"
)

type Kind string

const (
	KindSymbolic Kind = "symbolic"
	KindCustom   Kind = "custom"
)

var (
	ErrEntryNotFound = errors.New("chord entry not found")
	ErrUnknownKind   = errors.New("unknown chord entry kind")
)

// Entry is one item of the chord list: either a Symbolic or a Custom chord.
type Entry interface {
	EntryID() uuid.UUID
	Kind() Kind
	isEntry()
}

// Symbolic is a chord written as a symbol such as "Am7".
type Symbolic struct {
	ID        uuid.UUID `json:"id"`
	Symbol    string    `json:"symbol"`
	Inversion int       `json:"inversion"`
	Octave    bool      `json:"octave"`
}

// Custom is a chord built from explicit absolute pitches.
type Custom struct {
	ID        uuid.UUID `json:"id"`
	Pitches   []int     `json:"pitches"`
	Root      *int      `json:"root,omitempty"`
	Inversion int       `json:"inversion"`
}

func NewSymbolic(symbol string) Symbolic {
	return Symbolic{ID: uuid.New(), Symbol: symbol}
}

func NewCustom(pitches []int, root *int) Custom {
	return Custom{ID: uuid.New(), Pitches: clonePitches(pitches), Root: cloneRoot(root)}
}

func (s Symbolic) EntryID() uuid.UUID { return s.ID }
func (s Symbolic) Kind() Kind         { return KindSymbolic }
func (Symbolic) isEntry()             {}

func (c Custom) EntryID() uuid.UUID { return c.ID }
func (c Custom) Kind() Kind         { return KindCustom }
func (Custom) isEntry()             {}

// Resolve derives the voicing of e. Nothing is cached: the voicing always
// reflects the entry's current symbol, inversion and octave. The inversion is
// wrapped into the chord's note count first.
func Resolve(e Entry) (voicing.Voicing, error) {
	switch e := e.(type) {
	case Symbolic:
		parsed, err := chord.Parse(e.Symbol)
		if err != nil {
			return voicing.Voicing{}, err
		}
		pattern, ok := quality.Pattern(parsed.Quality)
		if !ok {
			return voicing.Voicing{}, fmt.Errorf("%w: %q", voicing.ErrUnknownQuality, parsed.Quality)
		}
		inversion := voicing.NormalizeInversion(e.Inversion, len(pattern))
		return voicing.FromParsed(parsed, inversion, e.Octave)
	case Custom:
		inversion := voicing.NormalizeInversion(e.Inversion, len(e.Pitches))
		return voicing.Custom(e.Pitches, e.Root, inversion)
	default:
		return voicing.Voicing{}, fmt.Errorf("%w: %T", ErrUnknownKind, e)
	}
}

// Transpose shifts e by semitones. A symbolic chord moves its root around
// the octave and keeps its spelling sharp; one that no longer parses is
// returned unchanged. A custom chord moves every pitch, and its root,
// by the absolute amount with no wrapping.
func Transpose(e Entry, semitones int) Entry {
	switch e := e.(type) {
	case Symbolic:
		parsed, err := chord.Parse(e.Symbol)
		if err != nil {
			return e
		}
		e.Symbol = parsed.Transpose(semitones).Symbol()
		return e
	case Custom:
		pitches := make([]int, len(e.Pitches))
		for i, p := range e.Pitches {
			pitches[i] = p + semitones
		}
		e.Pitches = pitches
		if e.Root != nil {
			root := *e.Root + semitones
			e.Root = &root
		}
		return e
	default:
		return e
	}
}

// Label is the heading a presentation layer shows for e.
func Label(e Entry) string {
	switch e := e.(type) {
	case Symbolic:
		return e.Symbol
	case Custom:
		return "Custom chord"
	default:
		return ""
	}
}

func clonePitches(pitches []int) []int {
	if pitches == nil {
		return nil
	}
	res := make([]int, len(pitches))
	copy(res, pitches)
	return res
}

func cloneRoot(root *int) *int {
	if root == nil {
		return nil
	}
	r := *root
	return &r
}
