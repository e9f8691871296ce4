package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "avoterm.log")

	logger, err := New("info", file, false)
	require.NoError(t, err)
	logger.Info("payment check", zap.String("identifier", "abc"))
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"identifier":"abc"`))
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	logger, err := New("warn", filepath.Join(t.TempDir(), "a.log"), true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty", "", false)
	assert.Error(t, err)
}
