package hclcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argscope/internal/catalog"
)

const fixtureManifest = `
flag "help" {
  abbrev      = "h"
  inheritable = true
}

command "build" {
  description = "compile the project"

  flag "verbose" {
    abbrev = "v"
  }

  option "jobs" {
    abbrev  = "j"
    default = 4
  }

  command "sub" {
    option "out" {
      description = "output path"
    }
  }
}
`

func TestParseManifest(t *testing.T) {
	c, err := NewLoader().Parse(context.Background(), "fixture.hcl", []byte(fixtureManifest))
	require.NoError(t, err)

	help, ok := c.Lookup("help")
	require.True(t, ok)
	assert.Equal(t, catalog.KindFlag, help.Kind)
	assert.Equal(t, 'h', help.Abbrev)
	assert.True(t, help.Inheritable)

	build, ok := c.Lookup("build")
	require.True(t, ok)
	require.Equal(t, catalog.KindCommand, build.Kind)
	assert.Equal(t, "compile the project", build.Description)

	jobs, ok := build.Sub().Lookup("jobs")
	require.True(t, ok)
	assert.Equal(t, catalog.KindKeyValue, jobs.Kind)
	assert.Equal(t, "4", jobs.Default, "numeric default converts to its string form")

	sub, ok := build.Sub().Lookup("sub")
	require.True(t, ok)
	out, ok := sub.Sub().Lookup("out")
	require.True(t, ok)
	assert.Equal(t, "output path", out.Description)
	assert.Equal(t, rune(0), out.Abbrev)
}

func TestParseManifestErrors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{
			name: "invalid hcl",
			src:  `flag "help" {`,
		},
		{
			name: "multi-character abbreviation",
			src:  `flag "verbose" { abbrev = "vv" }`,
		},
		{
			name: "duplicate name",
			src: `
flag "verbose" {}
option "verbose" {}
`,
		},
		{
			name: "duplicate abbreviation in nested command",
			src: `
command "build" {
  flag "verbose" { abbrev = "v" }
  flag "version" { abbrev = "v" }
}
`,
		},
		{
			name: "unconvertible default",
			src:  `option "out" { default = ["a", "b"] }`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Parse(context.Background(), "bad.hcl", []byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestLoadMergesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`flag "verbose" { abbrev = "v" }`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`command "build" {}`), 0o644))

	c, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, c.Contains("verbose"))
	assert.True(t, c.Contains("build"))
}

func TestLoadRejectsCrossFileDuplicates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`flag "verbose" {}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`option "verbose" {}`), 0o644))

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	var dup *catalog.DuplicateError
	assert.ErrorAs(t, err, &dup)
}
