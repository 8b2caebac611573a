package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/parse"
	"github.com/vk/argscope/internal/scope"
)

func fixtureTree(t *testing.T) (*scope.Tree, *catalog.Catalog) {
	t.Helper()
	b := catalog.NewBuilder()
	require.NoError(t, b.Register(catalog.Definition{Name: "verbose", Abbrev: 'v', Kind: catalog.KindFlag, Description: "print progress while working"}))
	build, err := b.Command(catalog.Definition{Name: "build", Description: "compile the project"})
	require.NoError(t, err)
	require.NoError(t, build.Register(catalog.Definition{Name: "jobs", Abbrev: 'j', Kind: catalog.KindKeyValue, Default: "1"}))
	root := b.Freeze()

	tree, _, perr := parse.NewSession().Run(context.Background(), []string{"-v", "build", "--jobs", "4"}, root)
	require.NoError(t, perr)
	return tree, root
}

func TestText(t *testing.T) {
	tree, _ := fixtureTree(t)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tree, false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"(root)",
		"  --verbose",
		"  build",
		"    --jobs 4",
	}, lines)
}

func TestJSON(t *testing.T) {
	tree, _ := fixtureTree(t)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, tree))

	var doc struct {
		Tokens []string `json:"tokens"`
		Tree   struct {
			Flags    []string `json:"flags"`
			Children []struct {
				Command string            `json:"command"`
				Values  map[string]string `json:"values"`
			} `json:"children"`
		} `json:"tree"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, []string{"--verbose", "build", "--jobs", "4"}, doc.Tokens)
	assert.Equal(t, []string{"verbose"}, doc.Tree.Flags)
	require.Len(t, doc.Tree.Children, 1)
	assert.Equal(t, "build", doc.Tree.Children[0].Command)
	assert.Equal(t, map[string]string{"jobs": "4"}, doc.Tree.Children[0].Values)
}

func TestListing(t *testing.T) {
	_, root := fixtureTree(t)

	var buf bytes.Buffer
	require.NoError(t, Listing(&buf, root, 80))
	out := buf.String()

	assert.Contains(t, out, "--verbose, -v")
	assert.Contains(t, out, "print progress while working")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, `--jobs, -j <value> (default "1")`)
}

func TestListingWrapsLongDescriptions(t *testing.T) {
	b := catalog.NewBuilder()
	long := strings.Repeat("wrap me please ", 10)
	require.NoError(t, b.Register(catalog.Definition{Name: "x", Kind: catalog.KindFlag, Description: strings.TrimSpace(long)}))

	var buf bytes.Buffer
	require.NoError(t, Listing(&buf, b.Freeze(), 60))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 60+nameColumn)
	}
	assert.Greater(t, strings.Count(buf.String(), "\n"), 1, "description wrapped onto multiple lines")
}
