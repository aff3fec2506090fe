package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitForCLI_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Info("Collection", "loaded %d themes", 3)
	Warn("Collection", "truncated record at %d", 7)
	Error("Alacritty", errors.New("boom"), "write failed")

	out := buf.String()
	assert.NotContains(t, out, "loaded 3 themes")
	assert.Contains(t, out, "truncated record at 7")
	assert.Contains(t, out, "subsystem=Collection")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_RoutesToChannel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	ch := InitForTUI(LevelDebug)
	Debug("Picker", "filter %s", "dark")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelDebug, entry.Level)
		assert.Equal(t, "Picker", entry.Subsystem)
		assert.Equal(t, "filter dark", entry.Message)
	default:
		t.Fatal("expected an entry on the TUI channel")
	}
	assert.Empty(t, buf.String())

	CloseTUIChannel()
	_, open := <-ch
	assert.False(t, open)
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}
