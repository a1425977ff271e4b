package logging

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	originalOutput := log.Writer()
	originalFlags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(originalOutput)
		log.SetFlags(originalFlags)
	}()
	fn()
	return buf.String()
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input       string
		expected    int
		expectError bool
	}{
		{"none", None, false},
		{"ERROR", Error, false},
		{"warn", Warning, false},
		{"Warning", Warning, false},
		{"info", Info, false},
		{" debug ", Debug, false},
		{"", DefaultLevel, true},
		{"verbose", DefaultLevel, true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			l, err := ParseLevel(tc.input)
			assert.Equal(t, tc.expected, l)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelNameRoundTrip(t *testing.T) {
	for _, l := range []int{None, Error, Warning, Info, Debug} {
		parsed, err := ParseLevel(LevelName(l))
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
	assert.Equal(t, "level(9)", LevelName(9))
}

func TestSetupLogging(t *testing.T) {
	originalLevel := GetLevel()
	t.Cleanup(func() { SetLevel(originalLevel) })

	testCases := []struct {
		input    string
		expected int
		warns    bool
	}{
		{"debug", Debug, false},
		{"info", Info, false},
		{"warn", Warning, false},
		{"none", None, false},
		{"loud", DefaultLevel, true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			SetLevel(Warning)
			var got int
			out := captureLogOutput(t, func() {
				got = SetupLogging(tc.input)
			})
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected, GetLevel())
			if tc.warns {
				assert.Contains(t, out, "[WARN]  invalid log level 'loud', using 'warn'")
			} else {
				assert.NotContains(t, out, "[WARN]")
			}
		})
	}
}

func TestLogfOutput(t *testing.T) {
	originalLevel := GetLevel()
	t.Cleanup(func() { SetLevel(originalLevel) })

	testCases := []struct {
		name     string
		setLevel int
		logLevel int
		prefix   string
		written  bool
	}{
		{"DebugAtDebug", Debug, Debug, "[DEBUG] ", true},
		{"InfoAtDebug", Debug, Info, "[INFO]  ", true},
		{"DebugAtInfo", Info, Debug, "", false},
		{"WarnAtWarning", Warning, Warning, "[WARN]  ", true},
		{"InfoAtWarning", Warning, Info, "", false},
		{"ErrorAtError", Error, Error, "[ERROR] ", true},
		{"ErrorAtNone", None, Error, "", false},
		{"NoneAtDebug", Debug, None, "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetLevel(tc.setLevel)
			out := captureLogOutput(t, func() {
				Logf(tc.logLevel, "product %d", 7)
			})
			if !tc.written {
				assert.Empty(t, out)
				return
			}
			assert.Equal(t, fmt.Sprintf("%sproduct 7", tc.prefix), strings.TrimSpace(out))
		})
	}
}
