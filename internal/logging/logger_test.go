package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/loadout/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		"":        logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bogus":   logrus.WarnLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, logging.GetLevel(in), in)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	base := filepath.Join(t.TempDir(), "loadout")
	out := logging.Setup(logging.SetupParams{
		LogLevel:      "debug",
		LogFileName:   base,
		LogFormatJSON: true,
	})
	lj, ok := out.(*lumberjack.Logger)
	require.True(t, ok)
	t.Cleanup(func() { _ = lj.Close() })

	logrus.WithField("bucket", "Legs/strength").Debug("allocated")

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bucket":"Legs/strength"`)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
