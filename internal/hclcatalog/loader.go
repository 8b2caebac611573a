package hclcatalog

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/ctxlog"
	"github.com/vk/argscope/internal/fsutil"
)

// manifestExtension is the file suffix searched for when a directory is
// given to Load.
const manifestExtension = ".hcl"

// fileRoot decodes the top-level blocks of one manifest file.
type fileRoot struct {
	Commands []*commandBlock `hcl:"command,block"`
	Flags    []*flagBlock    `hcl:"flag,block"`
	Options  []*optionBlock  `hcl:"option,block"`
}

// Loader reads catalog manifests and produces frozen catalogs.
type Loader struct{}

// NewLoader creates a new HCL catalog loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every manifest under the given paths, merges them into a
// single root catalog and freezes it. A path may be a single manifest file
// or a directory searched recursively.
func (l *Loader) Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Catalog loader started.", "path_count", len(paths))

	parser := hclparse.NewParser()
	builder := catalog.NewBuilder()

	for _, path := range paths {
		files, err := fsutil.FindManifests(path, manifestExtension)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			logger.Warn("No catalog manifests found in path.", "path", path)
		}

		for _, file := range files {
			hclFile, diags := parser.ParseHCLFile(file)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
			}
			if err := decodeInto(builder, hclFile.Body, file); err != nil {
				return nil, err
			}
			logger.Debug("Loaded catalog manifest.", "file", file)
		}
	}

	c := builder.Freeze()
	logger.Debug("Catalog loading complete.", "root_options", c.Len())
	return c, nil
}

// Parse builds a catalog from a single in-memory manifest. The filename is
// only used in diagnostics.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*catalog.Catalog, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	builder := catalog.NewBuilder()
	if err := decodeInto(builder, hclFile.Body, filename); err != nil {
		return nil, err
	}
	return builder.Freeze(), nil
}

func decodeInto(builder *catalog.Builder, body hcl.Body, filename string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}
	if err := translateLevel(builder, root.Flags, root.Options, root.Commands); err != nil {
		return fmt.Errorf("manifest %s: %w", filename, err)
	}
	return nil
}
