package chord

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/quality"
)

var ErrUnrecognizedSymbol = errors.New("unrecognized chord symbol")

// ParsedChord is a chord symbol resolved to its root and quality.
type ParsedChord struct {
	Root    pitch.PitchClass `json:"root"`
	Quality quality.Key      `json:"quality"`
}

// Symbol renders the chord back to its canonical sharp-spelled symbol.
func (p ParsedChord) Symbol() string {
	return pitch.PitchClassToName(p.Root) + string(p.Quality)
}

func (p ParsedChord) String() string {
	return p.Symbol()
}

// Transpose moves the root by n semitones, wrapping around the octave.
func (p ParsedChord) Transpose(n int) ParsedChord {
	return ParsedChord{Root: p.Root.Transpose(n), Quality: p.Quality}
}

var symbolRe = buildSymbolRe()

func buildSymbolRe() *regexp.Regexp {
	var alternatives []string
	for _, k := range quality.KeysByLength() {
		if k == quality.Major {
			continue
		}
		alternatives = append(alternatives, regexp.QuoteMeta(string(k)))
	}
	return regexp.MustCompile(`^ *([A-Ga-g])([#b]?)(?:(` + strings.Join(alternatives, "|") + `))? *$`)
}

// Parse reads a chord symbol such as "Cmaj7", " f#m7b5 " or "Bb".
func Parse(symbol string) (ParsedChord, error) {
	m := symbolRe.FindStringSubmatch(symbol)
	if m == nil {
		return ParsedChord{}, fmt.Errorf("%w: %q", ErrUnrecognizedSymbol, symbol)
	}

	root, ok := pitch.NameToPitchClass(pitch.NormalizeRoot(m[1] + m[2]))
	if !ok {
		// Cb, Fb, E# and B# match the grammar but have no table entry
		return ParsedChord{}, fmt.Errorf("%w: unknown root in %q", ErrUnrecognizedSymbol, symbol)
	}
	return ParsedChord{Root: root, Quality: quality.Key(m[3])}, nil
}

// MustParse is Parse for symbols known to be valid, such as table literals.
func MustParse(symbol string) ParsedChord {
	p, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return p
}
