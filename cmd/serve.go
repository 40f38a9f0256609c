package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/entry"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/match"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/quality"
	"github.com/jsphweid/chordex/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const maxBodyBytes = 1 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord engine over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Could not encode response", err, nil)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("could not decode request body: %w", err))
		return false
	}
	return true
}

func voicingResponse(label string, v voicing.Voicing) model.VoicingResponse {
	return model.VoicingResponse{Voicing: v, NoteNames: v.NoteNames(), Label: label}
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

func HandleQualities(w http.ResponseWriter, r *http.Request) {
	keys := quality.Keys()
	res := make([]model.QualityInfo, len(keys))
	for i, k := range keys {
		pattern, _ := quality.Pattern(k)
		res[i] = model.QualityInfo{Key: string(k), Description: quality.Describe(k), Pattern: pattern}
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequest
	if !decodeBody(w, r, &input) {
		return
	}

	res := model.ParseResponse{Results: make([]model.ParseResult, len(input.Symbols))}
	for i, s := range input.Symbols {
		p, err := chord.Parse(s)
		if err != nil {
			res.Results[i] = model.ParseResult{Input: s, Error: err.Error()}
			continue
		}
		res.Results[i] = model.ParseResult{
			Input:   s,
			OK:      true,
			Symbol:  p.Symbol(),
			Root:    p.Root.String(),
			Quality: string(p.Quality),
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingRequest
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Inversion < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %d", voicing.ErrNegativeInversion, input.Inversion))
		return
	}

	e := entry.Symbolic{Symbol: input.Symbol, Inversion: input.Inversion, Octave: input.Octave}
	v, err := entry.Resolve(e)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, voicingResponse(entry.Label(e), v))
}

func HandleCustom(w http.ResponseWriter, r *http.Request) {
	var input model.CustomRequest
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Inversion < 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %d", voicing.ErrNegativeInversion, input.Inversion))
		return
	}

	e := entry.NewCustom(input.Pitches, input.Root)
	e.Inversion = input.Inversion
	v, err := entry.Resolve(e)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, voicingResponse(entry.Label(e), v))
}

func HandleMatch(w http.ResponseWriter, r *http.Request) {
	var input model.MatchRequest
	if !decodeBody(w, r, &input) {
		return
	}

	pcs := make([]pitch.PitchClass, 0, len(input.Pitches)+len(input.PitchClasses))
	for _, p := range input.Pitches {
		pcs = append(pcs, pitch.Of(p))
	}
	for _, pc := range input.PitchClasses {
		pcs = append(pcs, pitch.PitchClass(pc).Normalize())
	}
	writeJSON(w, http.StatusOK, model.MatchResponse{Matches: match.Chords(pcs)})
}

func HandleSuggest(w http.ResponseWriter, r *http.Request) {
	limit := constants.GetSuggestLimit()
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}
	writeJSON(w, http.StatusOK, model.SuggestResponse{Suggestions: match.Suggest(r.URL.Query().Get("q"), limit)})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequest
	if !decodeBody(w, r, &input) {
		return
	}
	entries := input.Entries.Transpose(input.Semitones)
	writeJSON(w, http.StatusOK, model.TransposeResponse{Entries: entries})
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequest
	if !decodeBody(w, r, &input) {
		return
	}

	resolved := input.Entries.Resolve()
	res := model.ResolveResponse{Results: make([]model.ResolvedEntry, len(resolved))}
	for i, item := range resolved {
		label := entry.Label(item.Entry)
		out := model.ResolvedEntry{Entry: item.Entry, Label: label}
		if item.Err != nil {
			out.Error = item.Err.Error()
			if !errors.Is(item.Err, chord.ErrUnrecognizedSymbol) {
				logger.Warn("Could not resolve entry", logger.Fields{"label": label, "error": item.Err.Error()})
			}
		} else {
			v := voicingResponse(label, item.Voicing)
			out.Voicing = &v
		}
		res.Results[i] = out
	}
	writeJSON(w, http.StatusOK, res)
}

// NewRouter wires every route behind request logging.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(logger.Middleware)
	router.HandleFunc("/health", HandleHealth).Methods("GET")
	router.HandleFunc("/qualities", HandleQualities).Methods("GET")
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/custom", HandleCustom).Methods("POST")
	router.HandleFunc("/match", HandleMatch).Methods("POST")
	router.HandleFunc("/suggest", HandleSuggest).Methods("GET")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/resolve", HandleResolve).Methods("POST")
	return router
}

// NewHandler is the router wrapped with the configured CORS policy.
func NewHandler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(NewRouter())
}

func serve() error {
	addr := ":" + constants.GetPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Server starting", logger.Fields{"addr": addr, "environment": constants.GetEnvironment()})
	return srv.ListenAndServe()
}
