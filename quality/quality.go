package quality

import (
	"sort"

	"github.com/jsphweid/chordex/pitch"
)

// Key is a chord quality suffix as written after the root, "" for a major triad.
type Key string

const Major Key = ""

type definition struct {
	key         Key
	description string
	// semitone offsets from the root, ascending; values above 11 are
	// compound intervals (14 is the ninth)
	pattern []int
}

var vocabulary = []definition{
	{key: "", description: "major", pattern: []int{0, 4, 7}},
	{key: "m", description: "minor", pattern: []int{0, 3, 7}},
	{key: "dim", description: "diminished", pattern: []int{0, 3, 6}},
	{key: "aug", description: "augmented", pattern: []int{0, 4, 8}},
	{key: "sus2", description: "suspended second", pattern: []int{0, 2, 7}},
	{key: "sus4", description: "suspended fourth", pattern: []int{0, 5, 7}},
	{key: "6", description: "major sixth", pattern: []int{0, 4, 7, 9}},
	{key: "m6", description: "minor sixth", pattern: []int{0, 3, 7, 9}},
	{key: "7", description: "dominant seventh", pattern: []int{0, 4, 7, 10}},
	{key: "maj7", description: "major seventh", pattern: []int{0, 4, 7, 11}},
	{key: "m7", description: "minor seventh", pattern: []int{0, 3, 7, 10}},
	{key: "dim7", description: "diminished seventh", pattern: []int{0, 3, 6, 9}},
	{key: "m7b5", description: "half-diminished", pattern: []int{0, 3, 6, 10}},
	{key: "add9", description: "added ninth", pattern: []int{0, 4, 7, 14}},
	{key: "9", description: "dominant ninth", pattern: []int{0, 4, 7, 10, 14}},
	{key: "m9", description: "minor ninth", pattern: []int{0, 3, 7, 10, 14}},
	{key: "maj9", description: "major ninth", pattern: []int{0, 4, 7, 11, 14}},
}

var byKey = func() map[Key]definition {
	res := make(map[Key]definition, len(vocabulary))
	for _, d := range vocabulary {
		res[d.key] = d
	}
	return res
}()

// Pattern returns a copy of the offset pattern registered for k.
func Pattern(k Key) ([]int, bool) {
	d, ok := byKey[k]
	if !ok {
		return nil, false
	}
	res := make([]int, len(d.pattern))
	copy(res, d.pattern)
	return res, true
}

func Exists(k Key) bool {
	_, ok := byKey[k]
	return ok
}

func Describe(k Key) string {
	return byKey[k].description
}

// Keys returns every registered key in registration order.
func Keys() []Key {
	res := make([]Key, 0, len(vocabulary))
	for _, d := range vocabulary {
		res = append(res, d.key)
	}
	return res
}

// Suffixes returns the registered keys except the empty major key.
func Suffixes() []Key {
	var res []Key
	for _, k := range Keys() {
		if k != Major {
			res = append(res, k)
		}
	}
	return res
}

// KeysByLength returns the keys longest first, so that a matcher trying them
// in order never lets a shorter key shadow a longer one sharing its prefix.
func KeysByLength() []Key {
	keys := Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// PitchClasses returns the set of pitch classes k spans when built on root.
func PitchClasses(root pitch.PitchClass, k Key) (map[pitch.PitchClass]bool, bool) {
	d, ok := byKey[k]
	if !ok {
		return nil, false
	}
	res := make(map[pitch.PitchClass]bool, len(d.pattern))
	for _, offset := range d.pattern {
		res[root.Transpose(offset)] = true
	}
	return res, true
}
