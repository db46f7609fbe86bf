package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewLogger(t *testing.T) {
	log := NewLogger("warn")
	require.NotNil(t, log)
	require.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
}
