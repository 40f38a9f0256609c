package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/chordex/entry"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestHealthAndQualities(t *testing.T) {
	w := do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[model.HealthResponse](t, w).Status)

	w = do(t, http.MethodGet, "/qualities", "")
	qualities := decode[[]model.QualityInfo](t, w)
	require.Len(t, qualities, 17)
	assert.Equal(t, "", qualities[0].Key)
	assert.Equal(t, []int{0, 4, 7}, qualities[0].Pattern)
}

func TestHandleParse(t *testing.T) {
	w := do(t, http.MethodPost, "/parse", `{"symbols":["db maj7","E#"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.ParseResponse](t, w)
	require.Len(t, res.Results, 2)
	assert.False(t, res.Results[0].OK)
	assert.NotEmpty(t, res.Results[0].Error)
	assert.False(t, res.Results[1].OK)

	w = do(t, http.MethodPost, "/parse", `{"symbols":["dbmaj7"]}`)
	res = decode[model.ParseResponse](t, w)
	assert.Equal(t, model.ParseResult{Input: "dbmaj7", OK: true, Symbol: "C#maj7", Root: "C#", Quality: "maj7"}, res.Results[0])
}

func TestHandleVoicing(t *testing.T) {
	w := do(t, http.MethodPost, "/voicing", `{"symbol":"Dm7","inversion":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.VoicingResponse](t, w)
	assert.Equal(t, []int{69, 72, 74, 77}, res.Pitches)
	assert.Equal(t, 74, res.RootPitch)
	assert.Equal(t, []string{"A4", "C5", "D5", "F5"}, res.NoteNames)
	assert.Equal(t, "Dm7", res.Label)
}

func TestHandleVoicingRejectsBadInput(t *testing.T) {
	for _, body := range []string{`{"symbol":"H7"}`, `{"symbol":"C","inversion":-1}`, `{"symbol":`} {
		w := do(t, http.MethodPost, "/voicing", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.NotEmpty(t, decode[model.ErrorResponse](t, w).Error, body)
	}
}

func TestHandleCustom(t *testing.T) {
	w := do(t, http.MethodPost, "/custom", `{"pitches":[67,60,64],"root":60,"inversion":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.VoicingResponse](t, w)
	assert.Equal(t, []int{64, 67, 72}, res.Pitches)
	assert.Equal(t, 72, res.RootPitch)
	assert.Equal(t, []string{"3", "5", "R"}, res.Labels)

	w = do(t, http.MethodPost, "/custom", `{"pitches":[]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[model.VoicingResponse](t, w).Pitches)
}

func TestHandleMatch(t *testing.T) {
	w := do(t, http.MethodPost, "/match", `{"pitches":[60],"pitchClasses":[16]}`)
	require.Equal(t, http.StatusOK, w.Code)
	matches := decode[model.MatchResponse](t, w).Matches
	assert.Contains(t, matches, "Am7")
	assert.Contains(t, matches, "Cmaj7")

	w = do(t, http.MethodPost, "/match", `{"pitches":[60,72]}`)
	assert.JSONEq(t, `{"matches":[]}`, w.Body.String())

	w = do(t, http.MethodGet, "/match", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleSuggest(t *testing.T) {
	t.Setenv("SUGGEST_LIMIT", "")

	w := do(t, http.MethodGet, "/suggest?q=cm", "")
	assert.Equal(t, []string{"Cm", "Cm6", "Cmaj7", "Cm7", "Cm7b5", "Cm9", "Cmaj9"},
		decode[model.SuggestResponse](t, w).Suggestions)

	w = do(t, http.MethodGet, "/suggest?q=f%23M&limit=2", "")
	assert.Equal(t, []string{"F#m", "F#m6"}, decode[model.SuggestResponse](t, w).Suggestions)

	w = do(t, http.MethodGet, "/suggest?q=c&limit=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleTranspose(t *testing.T) {
	body := `{"semitones":2,"entries":[
		{"symbol":"Bb","inversion":1},
		{"kind":"custom","pitches":[60,64],"root":60}
	]}`
	w := do(t, http.MethodPost, "/transpose", body)
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[model.TransposeResponse](t, w)
	require.Len(t, res.Entries, 2)

	s, ok := res.Entries[0].(entry.Symbolic)
	require.True(t, ok)
	assert.Equal(t, "C", s.Symbol)
	assert.Equal(t, 1, s.Inversion)

	c, ok := res.Entries[1].(entry.Custom)
	require.True(t, ok)
	assert.Equal(t, []int{62, 66}, c.Pitches)
	require.NotNil(t, c.Root)
	assert.Equal(t, 62, *c.Root)

	w = do(t, http.MethodPost, "/transpose", `{"entries":[{"kind":"scale"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleResolveIsolatesFailures(t *testing.T) {
	w := do(t, http.MethodPost, "/resolve", `{"entries":[{"symbol":"C"},{"symbol":"H"},{"kind":"custom","pitches":[]}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Results []struct {
			Label   string                 `json:"label"`
			Voicing *model.VoicingResponse `json:"voicing"`
			Error   string                 `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Results, 3)

	assert.Equal(t, "C", res.Results[0].Label)
	require.NotNil(t, res.Results[0].Voicing)
	assert.Equal(t, []int{60, 64, 67}, res.Results[0].Voicing.Pitches)

	assert.Nil(t, res.Results[1].Voicing)
	assert.NotEmpty(t, res.Results[1].Error)

	assert.Equal(t, "Custom chord", res.Results[2].Label)
	require.NotNil(t, res.Results[2].Voicing)
	assert.Empty(t, res.Results[2].Voicing.Pitches)
}

func TestCorsHeaders(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
