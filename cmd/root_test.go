package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runWithRecordedFlush(t *testing.T, args ...string) (int, error) {
	t.Helper()
	var flushes int
	prevInit, prevFlush := initLogs, flushLogs
	initLogs = func(dsn, environment, release string) (func(), error) {
		return func() { flushes++ }, nil
	}
	t.Cleanup(func() {
		initLogs, flushLogs = prevInit, prevFlush
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := execute()
	return flushes, err
}

func TestExecuteFlushesLogsWhenTheCommandFails(t *testing.T) {
	flushes, err := runWithRecordedFlush(t, "parse", "H")
	assert.Error(t, err)
	assert.Equal(t, 1, flushes)
}

func TestExecuteFlushesLogsOnSuccess(t *testing.T) {
	flushes, err := runWithRecordedFlush(t, "parse", "Am7")
	assert.NoError(t, err)
	assert.Equal(t, 1, flushes)
}
