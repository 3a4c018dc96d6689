package webcontent

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-webcontent/internal/assets"
	"github.com/alnah/go-webcontent/internal/fileutil"
	"github.com/alnah/go-webcontent/internal/logger"
	"github.com/alnah/go-webcontent/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ SourceLoader          = (*assets.FilesystemLoader)(nil)
	_ assets.TemplateLoader = (*assets.EmbeddedLoader)(nil)
)

// headerPerm is the mode of the generated header.
const headerPerm = 0o644

// Generator runs the web content pipeline.
// Create with NewGenerator, then call Build or Generate.
type Generator struct {
	root     string
	loader   SourceLoader
	renderer *pipeline.HeaderRenderer
	strict   bool
	log      logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRoot sets the project root holding the data directory.
// WebContent.h is written to the same directory. Defaults to ".".
func WithRoot(dir string) Option {
	return func(g *Generator) {
		g.root = dir
	}
}

// WithSourceLoader replaces the filesystem loader.
// The root is still used as the output directory.
func WithSourceLoader(l SourceLoader) Option {
	return func(g *Generator) {
		g.loader = l
	}
}

// WithStrict makes a missing reference tag fail with ErrTagNotFound.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// WithLogger sets the logger for stage timings and warnings.
// Defaults to a logger that discards everything.
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// NewGenerator creates a Generator.
// Returns ErrInvalidRoot if the root is not a directory.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		root: ".",
		log:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.loader == nil {
		fsLoader, err := assets.NewFilesystemLoader(g.root)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
		}
		g.loader = fsLoader
	}

	tmpl, err := assets.NewEmbeddedLoader().LoadTemplate(assets.HeaderTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading header template: %w", err)
	}
	g.renderer, err = pipeline.NewHeaderRenderer(tmpl)
	if err != nil {
		return nil, fmt.Errorf("initializing header renderer: %w", err)
	}

	return g, nil
}

// OutputPath returns where Generate writes the header.
func (g *Generator) OutputPath() string {
	return filepath.Join(g.root, OutputFile)
}

// Build loads the sources and runs every stage up to the rendered header.
// Nothing is written.
func (g *Generator) Build() (*Result, error) {
	start := time.Now()

	html, css, js, err := assets.LoadAll(g.loader)
	if err != nil {
		return nil, err
	}
	g.log.Debug().
		Int("html_bytes", len(html.Content)).
		Int("css_bytes", len(css.Content)).
		Int("js_bytes", len(js.Content)).
		Dur("elapsed", time.Since(start)).
		Msg("sources loaded")

	stage := time.Now()
	minCSS := pipeline.MinifyCSS(css.Content)
	minJS := pipeline.MinifyJS(js.Content)
	g.log.Debug().
		Int("css_bytes", len(minCSS)).
		Int("js_bytes", len(minJS)).
		Dur("elapsed", time.Since(stage)).
		Msg("assets minified")

	assembled, inlined := pipeline.InlineAssets(html.Content, minCSS, minJS)
	if missing := inlined.Missing(); len(missing) > 0 {
		if g.strict {
			return nil, fmt.Errorf("%w: %s", ErrTagNotFound, strings.Join(missing, ", "))
		}
		for _, tag := range missing {
			g.log.Warn().Str("tag", tag).Str("path", html.Path).Msg("reference tag not found, asset not inlined")
		}
	}

	literal := pipeline.EscapeCString(assembled)
	header, err := g.renderer.Render(pipeline.NewHeaderData(literal))
	if err != nil {
		return nil, err
	}
	g.log.Debug().
		Int("literal_bytes", len(literal)).
		Dur("elapsed", time.Since(start)).
		Msg("header rendered")

	return &Result{
		HTML:    assembled,
		Literal: literal,
		Header:  header,
		Inlined: inlined,
	}, nil
}

// Generate runs Build and atomically replaces WebContent.h under the root.
// On failure the previous header, if any, is left untouched.
func (g *Generator) Generate() (*Result, error) {
	result, err := g.Build()
	if err != nil {
		return nil, err
	}

	path := g.OutputPath()
	if err := fileutil.WriteFileAtomic(path, []byte(result.Header), headerPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWriteHeader, path, err)
	}
	g.log.Debug().Str("path", path).Int("bytes", len(result.Header)).Msg("header written")

	return result, nil
}
