package model

import (
	"github.com/jsphweid/chordex/entry"
	"github.com/jsphweid/chordex/voicing"
)

type ErrorResponse struct {
	Error string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type QualityInfo struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Pattern     []int  `json:"pattern"`
}

type ParseRequest struct {
	Symbols []string `json:"symbols"`
}

// ParseResult is one parsed symbol, or the error that stopped it.
type ParseResult struct {
	Input   string `json:"input"`
	OK      bool   `json:"ok"`
	Symbol  string `json:"symbol,omitempty"`
	Root    string `json:"root,omitempty"`
	Quality string `json:"quality"`
	Error   string `json:"error,omitempty"`
}

type ParseResponse struct {
	Results []ParseResult `json:"results"`
}

type VoicingRequest struct {
	Symbol    string `json:"symbol"`
	Inversion int    `json:"inversion"`
	Octave    bool   `json:"octave"`
}

type CustomRequest struct {
	Pitches   []int `json:"pitches"`
	Root      *int  `json:"root,omitempty"`
	Inversion int   `json:"inversion"`
}

type VoicingResponse struct {
	voicing.Voicing
	NoteNames []string `json:"noteNames"`
	Label     string   `json:"label,omitempty"`
}

// MatchRequest takes absolute pitches, bare pitch classes, or both.
type MatchRequest struct {
	Pitches      []int `json:"pitches,omitempty"`
	PitchClasses []int `json:"pitchClasses,omitempty"`
}

type MatchResponse struct {
	Matches []string `json:"matches"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type TransposeRequest struct {
	Entries   entry.List `json:"entries"`
	Semitones int        `json:"semitones"`
}

type TransposeResponse struct {
	Entries entry.List `json:"entries"`
}

type ResolveRequest struct {
	Entries entry.List `json:"entries"`
}

// ResolvedEntry carries either a voicing or the error for one entry.
type ResolvedEntry struct {
	Entry   entry.Entry      `json:"entry"`
	Label   string           `json:"label"`
	Voicing *VoicingResponse `json:"voicing,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type ResolveResponse struct {
	Results []ResolvedEntry `json:"results"`
}
