package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avolabs/avoterm/internal/brand"
	"github.com/avolabs/avoterm/internal/config"
)

// setup installs the globals PersistentPreRunE would have loaded.
func setup(t *testing.T, apiURL string) *cobra.Command {
	t.Helper()

	b, err := brand.Load("avo")
	require.NoError(t, err)

	logger = zap.NewNop()
	theme = b
	cfg = &config.Config{
		APIBaseURL: apiURL,
		Chain:      config.DefaultChain,
	}
	verifyJSON = false
	verifyInteractive = false
	askNoDelay = true

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&bytes.Buffer{})
	return cmd
}

func output(cmd *cobra.Command) string {
	return cmd.OutOrStdout().(*bytes.Buffer).String()
}

func TestRunVerifyPaid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/v1/solana/TOKEN" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"status":"approved","paymentTimestamp":1733000000000}]`))
	}))
	defer server.Close()

	cmd := setup(t, server.URL+"/orders/v1")
	require.NoError(t, runVerify(cmd, []string{"TOKEN"}))
	assert.Equal(t, "Status: Paid\n", output(cmd))
}

func TestRunVerifyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	cmd := setup(t, server.URL)
	err := runVerify(cmd, []string{"TOKEN"})
	require.Error(t, err)
	assert.Equal(t, "Error: not found", err.Error())
}

func TestRunVerifyEmptyAddress(t *testing.T) {
	cmd := setup(t, "http://127.0.0.1:1")
	err := runVerify(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid Solana token address")
}

func TestRunVerifyJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cmd := setup(t, server.URL)
	verifyJSON = true
	require.NoError(t, runVerify(cmd, []string{"TOKEN"}))

	out := output(cmd)
	assert.Contains(t, out, `"status": "Not Paid"`)
	assert.Contains(t, out, `"identifier": "TOKEN"`)
}

func TestRunAskCanned(t *testing.T) {
	cmd := setup(t, "")
	require.NoError(t, runAsk(cmd, []string{"SCAN"}))

	lines := strings.Split(strings.TrimSpace(output(cmd)), "\n")
	assert.Equal(t, "> SCAN", lines[0])
	assert.Equal(t, "$ Scanning Solana network...", lines[1])
	assert.Equal(t, "$ - Network health: Optimal", lines[len(lines)-1])
}

func TestRunAskFallback(t *testing.T) {
	cmd := setup(t, "")
	require.NoError(t, runAsk(cmd, []string{"what", "is", "sol"}))

	out := output(cmd)
	assert.Contains(t, out, "$ Processing query through neural network...")
	assert.Contains(t, out, "$ Avo AI Agent: Too many requests are coming in at this moment")
}

func TestRunAskClear(t *testing.T) {
	cmd := setup(t, "")
	require.NoError(t, runAsk(cmd, []string{"clear"}))
	assert.Contains(t, output(cmd), "(terminal cleared)")
}

// execute runs the real command tree against the config file at path.
func execute(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avoterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Cleanup(func() {
		viper.Reset()
		config.SetConfigFile("")
		configPath = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return path
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	path := tempConfig(t, "chain: solana\n")

	tests := []struct {
		key, value string
	}{
		{"brand", "bogus"},
		{"typing_delay", "fast"},
		{"fallback_delay", "-1s"},
		{"status_interval", "3"},
		{"http_timeout", "soon"},
		{"log_level", "loud"},
	}
	for _, tt := range tests {
		_, err := execute(t, path, "config", "set", tt.key, tt.value)
		require.Error(t, err, "%s=%s", tt.key, tt.value)
		assert.Contains(t, err.Error(), "invalid value for "+tt.key)
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "chain: solana\n", string(data), "rejected values must not be saved")
}

func TestConfigSetRepairsBadBrand(t *testing.T) {
	path := tempConfig(t, "brand: bogus\n")

	_, err := execute(t, path, "brands")
	require.Error(t, err)
	assert.ErrorIs(t, err, brand.ErrUnknownBrand)

	out, err := execute(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "bogus")

	out, err = execute(t, path, "config", "set", "brand", "neon")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved brand")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "brand: neon")

	out, err = execute(t, path, "brands")
	require.NoError(t, err)
	assert.Contains(t, out, "* neon")
}

func TestConfigSetAcceptsValidValues(t *testing.T) {
	path := tempConfig(t, "")

	for _, kv := range [][2]string{
		{"typing_delay", "20ms"},
		{"log_level", "debug"},
		{"brand", "AVO"},
	} {
		_, err := execute(t, path, "config", "set", kv[0], kv[1])
		require.NoError(t, err, "%s=%s", kv[0], kv[1])
	}

	_, err := execute(t, path, "brands")
	require.NoError(t, err)
}
