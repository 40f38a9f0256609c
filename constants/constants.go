package constants

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file from the working directory when one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("could not load .env: %v", err)
	}
}

func GetPort() string {
	return getString("PORT", "8080")
}

func GetEnvironment() string {
	return getString("ENVIRONMENT", "development")
}

func GetSentryDSN() string {
	return os.Getenv("SENTRY_DSN")
}

// GetCorsOrigins splits CORS_ORIGINS on commas.
func GetCorsOrigins() []string {
	var res []string
	for _, o := range strings.Split(getString("CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

func GetMidiInPort() int {
	return getInt("MIDI_IN_PORT", 0)
}

func GetListenDebounce() time.Duration {
	return time.Duration(getInt("LISTEN_DEBOUNCE_MS", 75)) * time.Millisecond
}

func GetExportBPM() float64 {
	bpm, err := strconv.ParseFloat(os.Getenv("EXPORT_BPM"), 64)
	if err != nil || bpm <= 0 {
		return 120
	}
	return bpm
}

func GetSuggestLimit() int {
	return getInt("SUGGEST_LIMIT", 10)
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
