package cli

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanServer serves a canned Open Food Facts v2 response and wires it
// into the options via a temp config file.
func scanServer(t *testing.T, opts *RootOptions, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "larder.yaml")
	cfg := fmt.Sprintf("barcode:\n  base_url: %s\n  timeout: 2s\n", srv.URL)
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	opts.ConfigPath = path
}

func TestScanLookup(t *testing.T) {
	opts := testRootOptions(t)
	scanServer(t, opts, `{"status":1,"product":{"product_name":"Passata di Pomodoro","brands":"Mutti"}}`)

	out := run(t, NewScanCommand(opts), "8001300129219")
	assert.Contains(t, out, "Product found: Passata di Pomodoro (Mutti)")
}

func TestScanAdd(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	scanServer(t, opts, `{"status":1,"product":{"product_name":"Passata di Pomodoro","brands":"Mutti"}}`)

	out := run(t, NewScanCommand(opts), "8001300129219",
		"--add", "--category", "Pantry", "--expires", "2025-06-01")
	assert.Contains(t, out, "Passata di Pomodoro was added to your kitchen! (id ing-1)")

	out = run(t, NewListCommand(opts))
	assert.Contains(t, out, "ing-1  Passata di Pomodoro (Mutti)")
}

func TestScanNotFound(t *testing.T) {
	opts := testRootOptions(t)
	scanServer(t, opts, `{"status":0}`)

	_, err := runE(t, NewScanCommand(opts), "0000000000000")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "could not find a product with barcode 0000000000000")
}

func TestScanAddWithoutName(t *testing.T) {
	opts := testRootOptions(t, "ing-1")
	scanServer(t, opts, `{"status":1,"product":{"brands":"Mutti"}}`)

	_, err := runE(t, NewScanCommand(opts), "123", "--add")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no usable name")
}
