package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewCLI_DefaultIsWarn(t *testing.T) {
	l, err := NewCLI("")
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNewCLI_Debug(t *testing.T) {
	l, err := NewCLI("DEBUG")
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNewServer_Levels(t *testing.T) {
	l, err := NewServer("")
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))

	l, err = NewServer("error")
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestBadLevel(t *testing.T) {
	_, err := NewCLI("loud")
	assert.Error(t, err)
	_, err = NewServer("loud")
	assert.Error(t, err)
}
