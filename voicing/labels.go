package voicing

import "github.com/jsphweid/chordex/pitch"

// NinthInterval is the compound ninth, kept apart from the simple second.
const NinthInterval = 14

var intervalLabels = map[int]string{
	0:             "R",
	3:             "m3",
	4:             "3",
	5:             "4",
	6:             "b5",
	7:             "5",
	8:             "6",
	9:             "6/13",
	10:            "7",
	11:            "maj7",
	NinthInterval: "9",
}

// IntervalLabel names the distance in semitones from the root, reduced to a
// single octave. Remainders without an entry, such as the second, get "".
// Elevenths and thirteenths are not told apart from fourths and sixths.
func IntervalLabel(semitones int) string {
	return intervalLabels[((semitones%pitch.OctaveSize)+pitch.OctaveSize)%pitch.OctaveSize]
}

// labelFor labels a pitch built from a pattern offset. The ninth keeps its
// compound label because its offset is carried with the pitch.
func labelFor(semitones, patternOffset int) string {
	if patternOffset == NinthInterval {
		return intervalLabels[NinthInterval]
	}
	return IntervalLabel(semitones)
}
