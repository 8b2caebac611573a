package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `
command "build" {
  flag "verbose" { abbrev = "v" }
  option "out" {}
}
`)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-catalog", path, "--", "build", "-v", "--out", "x"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "build")
	assert.Contains(t, out.String(), "--verbose")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" flag causes cli.Parse to return shouldExit=true.
	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-h"})
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_FlagError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"--this-is-not-a-valid-flag"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_BadManifest(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `command "build" {`)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-catalog", path, "-list"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load catalog")
}

func TestRun_ParseFailure(t *testing.T) {
	t.Parallel()

	path := writeCatalog(t, `command "build" {}`)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-catalog", path, "--", "deploy"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
}
