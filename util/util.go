package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/pitch"
	"golang.org/x/exp/constraints"
)

// GatherAllMidiPaths returns path itself when it is a file, otherwise every
// .mid/.midi file below it. maxNum of 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, fmt.Errorf("error walking %s: %w", path, err)
	}
	return res, nil
}

func isMidiPath(s string) bool {
	s = strings.ToLower(s)
	return strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi")
}

// GetKeys returns the map's keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// ParsePitch reads a MIDI number ("64"), a note name with octave ("E4")
// or a bare note name ("E"), which is placed in the octave of middle C.
func ParsePitch(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		if !pitch.InRange(n) {
			return 0, fmt.Errorf("%w: %d is outside the MIDI range", pitch.ErrInvalidNoteName, n)
		}
		return n, nil
	}
	if pc, ok := pitch.NameToPitchClass(arg); ok {
		return 60 + int(pc), nil
	}
	return pitch.NoteNameToMIDI(arg)
}

// ParsePitches parses every argument, accepting comma separated lists too.
func ParsePitches(args []string) ([]int, error) {
	var res []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			p, err := ParsePitch(part)
			if err != nil {
				return nil, err
			}
			res = append(res, p)
		}
	}
	return res, nil
}
