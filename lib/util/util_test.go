package util

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want logrus.Level
	}{
		{"Debug", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"Warning", logrus.WarnLevel},
		{"warn", logrus.WarnLevel},
		{" ERROR ", logrus.ErrorLevel},
		{"Fatal", logrus.FatalLevel},
		{"Panic", logrus.PanicLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLogLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogLevelRejectsUnknown(t *testing.T) {
	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLogLevelsAreParseable(t *testing.T) {
	for _, name := range LogLevels {
		_, err := ParseLogLevel(name)
		assert.NoError(t, err, "level %s should parse", name)
	}
}

func TestSetupLogging(t *testing.T) {
	log := logrus.StandardLogger()
	prevOut, prevLevel := log.Out, log.GetLevel()
	defer func() {
		log.SetOutput(prevOut)
		log.SetLevel(prevLevel)
	}()

	var buf bytes.Buffer
	require.NoError(t, SetupLogging(&buf, "Warning"))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Error(t, SetupLogging(&buf, "loud"))
}

func TestBuildInfo(t *testing.T) {
	assert.Contains(t, BuildInfo(), Version)
	assert.Contains(t, BuildInfo(), GitCommit)
}

func TestLevelNameIsSelectable(t *testing.T) {
	for _, in := range []string{"debug", "warn", "WARNING", " error ", "info", "Fatal", "panic"} {
		lvl, err := ParseLogLevel(in)
		require.NoError(t, err, in)
		assert.Contains(t, LogLevels, LevelName(lvl), in)
	}
	assert.Equal(t, "Warning", LevelName(logrus.WarnLevel))
	assert.Equal(t, "Debug", LevelName(logrus.TraceLevel))
}
