package chord

import (
	"fmt"
	"sort"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"
)

// PitchSet is the group of notes sounding together from Offset onwards.
type PitchSet struct {
	// microseconds from the start of the file
	Offset int64 `json:"offset"`
	Notes  []int `json:"notes"`
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	note      int
}

// CreateChordKey returns the canonical "60-64-67" key of a set of pitches.
// The input is left untouched.
func CreateChordKey(notes []int) string {
	sorted := make([]int, len(notes))
	copy(sorted, notes)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}

func getPitchSet(pressed map[int]int64, offset int64) PitchSet {
	notes := make([]int, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Ints(notes)
	return PitchSet{Offset: offset, Notes: notes}
}

// GetPitchSets collapses every track of s into the successive sets of
// simultaneously sounding notes, ordered by time. Empty sets are dropped.
func GetPitchSets(s *smf.SMF) (res []PitchSet, err error) {
	// smf.TimeAt can panic on malformed tempo maps
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("could not read pitch sets: %v", r)
		}
	}()

	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					note:      int(key),
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					note:      int(key),
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].offset != reducedEvents[j].offset {
			return reducedEvents[i].offset < reducedEvents[j].offset
		}
		return reducedEvents[i].isNoteOff && !reducedEvents[j].isNoteOff
	})

	offsetToSet := make(map[int64]PitchSet)
	pressed := make(map[int]int64)
	for _, evt := range reducedEvents {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = evt.offset
		}
		offsetToSet[evt.offset] = getPitchSet(pressed, evt.offset)
	}

	for _, set := range offsetToSet {
		if len(set.Notes) > 0 {
			res = append(res, set)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Offset < res[j].Offset
	})
	return res, nil
}
