package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lfun/config"
	"github.com/katalvlaran/lfun/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := logging.New(config.LoggingConfig{Level: "warn", Format: format}, false)
		require.NoError(t, err, format)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel), format)
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel), format)
	}

	log, err := logging.New(config.LoggingConfig{Level: "error", Format: "json"}, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel), "verbose forces debug")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud", Format: "json"}, false)
	assert.Error(t, err)
}
