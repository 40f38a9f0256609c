package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "CORS_ORIGINS", "MIDI_IN_PORT", "LISTEN_DEBOUNCE_MS", "EXPORT_BPM", "SUGGEST_LIMIT"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "development", GetEnvironment())
	assert.Equal(t, []string{"*"}, GetCorsOrigins())
	assert.Equal(t, 0, GetMidiInPort())
	assert.Equal(t, 75*time.Millisecond, GetListenDebounce())
	assert.Equal(t, 120.0, GetExportBPM())
	assert.Equal(t, 10, GetSuggestLimit())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("LISTEN_DEBOUNCE_MS", "20")
	t.Setenv("EXPORT_BPM", "92.5")
	t.Setenv("SUGGEST_LIMIT", "3")

	assert.Equal(t, "9000", GetPort())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetCorsOrigins())
	assert.Equal(t, 20*time.Millisecond, GetListenDebounce())
	assert.Equal(t, 92.5, GetExportBPM())
	assert.Equal(t, 3, GetSuggestLimit())
}

func TestBadNumbersFallBack(t *testing.T) {
	t.Setenv("MIDI_IN_PORT", "usb")
	t.Setenv("SUGGEST_LIMIT", "-4")
	t.Setenv("EXPORT_BPM", "0")

	assert.Equal(t, 0, GetMidiInPort())
	assert.Equal(t, 10, GetSuggestLimit())
	assert.Equal(t, 120.0, GetExportBPM())
}
