package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/argscope/internal/catalog"
	"github.com/vk/argscope/internal/ctxlog"
	"github.com/vk/argscope/internal/hclcatalog"
	"github.com/vk/argscope/internal/parse"
	"github.com/vk/argscope/internal/render"
)

// App encapsulates one inspector run: loaded catalog, configured session
// and output sink.
type App struct {
	outW    io.Writer
	errW    io.Writer
	logger  *slog.Logger
	config  *Config
	catalog *catalog.Catalog
	session *parse.Session
}

// NewApp loads the catalog manifests and prepares a parse session. A bad
// manifest is user input, not a programmer error, so it comes back as an
// error rather than a panic.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cat, err := hclcatalog.NewLoader().Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("Catalog loaded.", "path", cfg.CatalogPath, "root_options", cat.Len())

	session := parse.NewSession()
	session.MaxDepth = cfg.MaxDepth
	session.MaxTokens = cfg.MaxTokens
	session.AllowFreeForm = cfg.AllowFreeForm

	return &App{
		outW:    outW,
		errW:    errW,
		logger:  logger,
		config:  cfg,
		catalog: cat,
		session: session,
	}, nil
}

// Catalog returns the loaded root catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Run executes the configured action: either listing the catalog's options
// or parsing the target argv and rendering the scope tree.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.config.ListOptions {
		return render.Listing(a.outW, a.catalog, listingWidth())
	}

	tree, consumed, err := a.session.Run(ctx, a.config.Argv, a.catalog)
	if err != nil {
		return err
	}
	a.logger.Debug("Parse succeeded.", "consumed", consumed, "scopes", tree.Len())

	if a.config.OutputFormat == "json" {
		return render.JSON(a.outW, tree)
	}
	return render.Text(a.outW, tree, a.config.Color)
}

// listingWidth picks a wrap width for option listings. COLUMNS is honored
// when set, since the core never inspects the terminal itself.
func listingWidth() uint {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		var n uint
		if _, err := fmt.Sscanf(cols, "%d", &n); err == nil && n >= 40 {
			return n
		}
	}
	return 80
}
