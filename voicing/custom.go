package voicing

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordex/pitch"
)

// Custom voices a user-built chord: an explicit list of absolute pitches and
// an optional designated root. Each inversion moves the current lowest pitch
// up an octave instead of reapplying an interval pattern. An empty list
// gives an empty voicing.
func Custom(pitches []int, root *int, inversion int) (Voicing, error) {
	if inversion < 0 {
		return Voicing{}, fmt.Errorf("%w: %d", ErrNegativeInversion, inversion)
	}
	if len(pitches) == 0 {
		return Voicing{}, nil
	}

	reference := lowest(pitches)
	if root != nil {
		reference = *root
	}

	res := make([]int, len(pitches))
	copy(res, pitches)
	sort.Ints(res)
	for i := 0; i < inversion; i++ {
		raiseLowest(res)
	}

	labels := make([]string, len(res))
	for i, p := range res {
		labels[i] = IntervalLabel(p - reference)
	}

	return Voicing{
		Pitches:   res,
		RootPitch: pickRoot(res, pitch.Of(reference)),
		Labels:    labels,
	}, nil
}

func lowest(pitches []int) int {
	res := pitches[0]
	for _, p := range pitches[1:] {
		if p < res {
			res = p
		}
	}
	return res
}

// raiseLowest moves the first pitch of an ascending slice up an octave and
// slides it into place, keeping the slice ascending.
func raiseLowest(pitches []int) {
	p := pitches[0] + pitch.OctaveSize
	i := 1
	for ; i < len(pitches) && pitches[i] < p; i++ {
		pitches[i-1] = pitches[i]
	}
	pitches[i-1] = p
}
