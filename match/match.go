package match

import (
	"strings"

	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/quality"
)

// MinSize is the fewest distinct pitch classes worth looking up.
const MinSize = 2

const DefaultSuggestLimit = 10

// Chords lists every chord symbol whose pitch classes contain all of pcs.
// Roots are enumerated C to B, qualities in registration order.
func Chords(pcs []pitch.PitchClass) []string {
	return ChordsMin(pcs, MinSize)
}

// ChordsMin is Chords with a caller chosen threshold: fewer than minSize
// distinct pitch classes give no matches. An empty input never matches.
func ChordsMin(pcs []pitch.PitchClass, minSize int) []string {
	if minSize < 1 {
		minSize = 1
	}
	wanted := make(map[pitch.PitchClass]bool, len(pcs))
	for _, pc := range pcs {
		wanted[pc.Normalize()] = true
	}

	res := make([]string, 0)
	if len(wanted) < minSize {
		return res
	}

	for r := 0; r < pitch.OctaveSize; r++ {
		root := pitch.PitchClass(r)
		for _, k := range quality.Keys() {
			candidate, _ := quality.PitchClasses(root, k)
			if containsAll(candidate, wanted) {
				res = append(res, pitch.PitchClassToName(root)+string(k))
			}
		}
	}
	return res
}

// ChordsForPitches reduces absolute pitches to pitch classes and matches them.
func ChordsForPitches(midi []int) []string {
	pcs := make([]pitch.PitchClass, len(midi))
	for i, m := range midi {
		pcs[i] = pitch.Of(m)
	}
	return Chords(pcs)
}

func containsAll(candidate, wanted map[pitch.PitchClass]bool) bool {
	for pc := range wanted {
		if !candidate[pc] {
			return false
		}
	}
	return true
}

// Suggest returns up to limit symbols starting with prefix, ignoring case.
// A limit of zero or less means DefaultSuggestLimit.
func Suggest(prefix string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	res := make([]string, 0)
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return res
	}

	for _, name := range pitch.Names {
		for _, k := range quality.Suffixes() {
			symbol := name + string(k)
			if strings.HasPrefix(strings.ToUpper(symbol), prefix) {
				res = append(res, symbol)
				if len(res) == limit {
					return res
				}
			}
		}
	}
	return res
}
