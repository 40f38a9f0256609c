package midi_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/match"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voicingsFor(t *testing.T, symbols ...string) []voicing.Voicing {
	t.Helper()
	var res []voicing.Voicing
	for _, s := range symbols {
		v, err := voicing.FromParsed(chord.MustParse(s), 0, false)
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestExportedProgressionReadsBackAsPitchSets(t *testing.T) {
	voicings := voicingsFor(t, "C", "Am7", "Fmaj7", "G7")

	var buf bytes.Buffer
	require.NoError(t, midi.WriteSMF(&buf, voicings, midi.ExportOpts{BPM: 90}))

	s, err := midi.ReadMidi(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	sets, err := chord.GetPitchSets(s)
	require.NoError(t, err)
	require.Len(t, sets, len(voicings))

	for i, set := range sets {
		assert.Equal(t, voicings[i].Pitches, set.Notes)
	}
	assert.Contains(t, match.ChordsForPitches(sets[1].Notes), "Am7")
	assert.Contains(t, match.ChordsForPitches(sets[3].Notes), "G7")
}

func TestEmptyVoicingsBecomeRests(t *testing.T) {
	voicings := voicingsFor(t, "C")
	voicings = append(voicings, voicing.Voicing{})
	voicings = append(voicings, voicingsFor(t, "D")...)

	var buf bytes.Buffer
	require.NoError(t, midi.WriteSMF(&buf, voicings, midi.ExportOpts{}))

	s, err := midi.ReadMidi(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	sets, err := chord.GetPitchSets(s)
	require.NoError(t, err)

	require.Len(t, sets, 2)
	assert.Equal(t, []int{62, 66, 69}, sets[1].Notes)
	// a bar of C and a bar of rest at 120 bpm
	assert.InDelta(t, 4_000_000, sets[1].Offset, 1000)
}

func TestExportRejectsPitchesOutsideTheMidiRange(t *testing.T) {
	err := midi.WriteSMF(&bytes.Buffer{}, []voicing.Voicing{{Pitches: []int{120, 130}}}, midi.ExportOpts{})
	assert.Error(t, err)
}

func TestWriteAndReadMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progression.mid")
	require.NoError(t, midi.WriteMidiFile(path, voicingsFor(t, "Dm7", "G7"), midi.ExportOpts{}))

	sets, err := midi.ReadPitchSets(path)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "62-65-69-72", chord.CreateChordKey(sets[0].Notes))
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := midi.ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
