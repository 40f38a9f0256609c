package entry

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/voicing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransposeSymbolicWrapsAroundTheOctave(t *testing.T) {
	assert := assert.New(t)

	up := Transpose(NewSymbolic("B"), 1).(Symbolic)
	assert.Equal("C", up.Symbol)

	down := Transpose(NewSymbolic("C"), -1).(Symbolic)
	assert.Equal("B", down.Symbol)

	assert.Equal("C#m7b5", Transpose(NewSymbolic("Bbm7b5"), 3).(Symbolic).Symbol)
	assert.Equal("D", Transpose(NewSymbolic("  d "), 24).(Symbolic).Symbol)
	assert.Equal("G#maj9", Transpose(NewSymbolic("Amaj9"), -13).(Symbolic).Symbol)
}

func TestTransposeKeepsInversionAndOctave(t *testing.T) {
	e := Symbolic{ID: uuid.New(), Symbol: "Am", Inversion: 2, Octave: true}
	got := Transpose(e, 2).(Symbolic)
	assert.Equal(t, Symbolic{ID: e.ID, Symbol: "Bm", Inversion: 2, Octave: true}, got)
}

func TestTransposeLeavesUnparseableSymbolsAlone(t *testing.T) {
	e := Symbolic{ID: uuid.New(), Symbol: "H7"}
	assert.Equal(t, e, Transpose(e, 5))
}

func TestTransposeCustomShiftsAbsolutely(t *testing.T) {
	root := 67
	c := NewCustom([]int{67, 71, 74}, &root)

	got := c
	for i := 0; i < 15; i++ {
		got = Transpose(got, 1).(Custom)
	}

	assert := assert.New(t)
	assert.Equal([]int{82, 86, 89}, got.Pitches)
	require.NotNil(t, got.Root)
	assert.Equal(82, *got.Root)

	// the original is untouched
	assert.Equal([]int{67, 71, 74}, c.Pitches)
	assert.Equal(67, *c.Root)
}

func TestTransposeCustomWithoutRoot(t *testing.T) {
	got := Transpose(NewCustom([]int{60, 63}, nil), -14).(Custom)
	assert.Equal(t, []int{46, 49}, got.Pitches)
	assert.Nil(t, got.Root)
}

func TestResolveSymbolicWrapsInversion(t *testing.T) {
	e := Symbolic{ID: uuid.New(), Symbol: "C", Inversion: 4}
	v, err := Resolve(e)
	require.NoError(t, err)

	want, _ := voicing.FromParsed(chord.MustParse("C"), 1, false)
	assert.Equal(t, want, v)
	assert.Equal(t, 72, v.RootPitch)
}

func TestResolveReportsUnparseableSymbols(t *testing.T) {
	_, err := Resolve(NewSymbolic("C xyz123"))
	assert.ErrorIs(t, err, chord.ErrUnrecognizedSymbol)
}

func TestResolveCustom(t *testing.T) {
	e := Custom{ID: uuid.New(), Pitches: []int{60, 64, 67}, Inversion: 1}
	v, err := Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, []int{64, 67, 72}, v.Pitches)

	v, err = Resolve(Custom{ID: uuid.New()})
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestResolveRejectsNil(t *testing.T) {
	_, err := Resolve(nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestEntryJSONRoundTrip(t *testing.T) {
	root := 62
	l := List{
		Symbolic{ID: uuid.New(), Symbol: "F#m7", Inversion: 1},
		Custom{ID: uuid.New(), Pitches: []int{62, 66, 69}, Root: &root, Inversion: 2},
	}

	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"symbolic"`)
	assert.Contains(t, string(data), `"kind":"custom"`)

	var decoded List
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, l, decoded)
}

func TestUnmarshalEntryDefaults(t *testing.T) {
	e, err := UnmarshalEntry([]byte(`{"symbol":"Cm"}`))
	require.NoError(t, err)

	s, ok := e.(Symbolic)
	require.True(t, ok)
	assert.Equal(t, "Cm", s.Symbol)
	assert.NotEqual(t, uuid.Nil, s.ID)

	_, err = UnmarshalEntry([]byte(`{"kind":"chromatic"}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}
