package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/larder/internal/pantry"
	"github.com/roach88/larder/internal/testutil"
)

var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// testRootOptions builds root options with a temp database, pinned
// clock and sequential ids, shared across the commands of one test.
func testRootOptions(t *testing.T, ids ...string) *RootOptions {
	t.Helper()
	if len(ids) == 0 {
		ids = []string{"id-1", "id-2", "id-3", "id-4", "id-5", "id-6", "id-7", "id-8"}
	}
	return &RootOptions{
		Format:   "text",
		Database: filepath.Join(t.TempDir(), "larder.db"),
		Clock:    testutil.NewFixedClock(testNow),
		IDs:      pantry.NewFixedGenerator(ids...),
	}
}

// run executes a command built from the shared options and returns its
// stdout. Fails the test on error.
func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := runE(t, cmd, args...)
	require.NoError(t, err)
	return out
}

// runE executes a command and returns stdout plus the execution error.
func runE(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// decodeData unmarshals the data payload of a JSON CLI response into v.
func decodeData(t *testing.T, output string, v any) {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	require.Equal(t, "ok", resp.Status)
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}
