package mustache

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/stache/log"
)

const (
	// DefaultExtension is the file extension of partials.
	DefaultExtension = "html"

	// DefaultMaxDepth bounds the nesting of partials.
	DefaultMaxDepth = 100

	// stringSource names an in-memory template in a partial chain.
	stringSource = "<string>"
)

// Engine renders template files. It is safe for concurrent use.
type Engine struct {
	cache    *Cache
	ext      string
	useCache bool
	maxDepth int
	logger   log.Logger
}

// Option configures an [Engine].
type Option func(*Engine)

// WithExtension sets the extension appended to partial names. Dots are
// removed, so "html" and ".html" are equivalent. An empty extension keeps
// [DefaultExtension].
func WithExtension(ext string) Option {
	return func(e *Engine) {
		if ext = strings.ReplaceAll(ext, ".", ""); ext != "" {
			e.ext = ext
		}
	}
}

// WithFileCache enables or disables reuse of parse trees. With the cache
// disabled every render reads and parses its files again, so edits take
// effect immediately.
func WithFileCache(enabled bool) Option {
	return func(e *Engine) {
		e.useCache = enabled
	}
}

// WithCache makes the engine share cache instead of owning a new one.
func WithCache(cache *Cache) Option {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithMaxDepth sets the maximum nesting of partials. Values below one keep
// [DefaultMaxDepth].
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New returns an engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		ext:      DefaultExtension,
		useCache: true,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	if e.cache == nil {
		e.cache = NewCache()
	}

	return e
}

// Extension returns the extension appended to partial names.
func (e *Engine) Extension() string { return e.ext }

// Cache returns the cache holding the engine's parse trees.
func (e *Engine) Cache() *Cache { return e.cache }

// Render renders the template file at path with model.
//
// A missing path fails with [ErrFileNotFound]. Any failure while parsing or
// rendering, including in partials, is wrapped in [ErrParse].
func (e *Engine) Render(ctx context.Context, path string, model Model) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrReadTemplate.Wrap(err).With(slog.String("path", path))
	}

	tree, err := e.load(ctx, abs)
	if err != nil {
		if errors.Is(err, ErrFileNotFound) || errors.Is(err, ErrReadTemplate) {
			return "", err
		}

		return "", parseFailure(err)
	}

	out, err := e.execute(ctx, tree, model, filepath.Dir(abs), []string{abs})
	if err != nil {
		e.logger.DebugContext(ctx, "render failed",
			slog.String("path", abs), slog.Any("error", err))

		return "", parseFailure(err)
	}

	e.logger.DebugContext(ctx, "render complete",
		slog.String("path", abs), slog.Int("bytes", len(out)))

	return out, nil
}

// RenderString renders the template text with model. Its partials are
// resolved against dir. Templates rendered this way are never cached.
func (e *Engine) RenderString(
	ctx context.Context,
	text, dir string,
	model Model,
) (string, error) {
	tree, err := Parse(text)
	if err != nil {
		return "", parseFailure(err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", ErrReadTemplate.Wrap(err).With(slog.String("dir", dir))
	}

	out, err := e.execute(ctx, tree, model, abs, []string{filepath.Join(abs, stringSource)})
	if err != nil {
		return "", parseFailure(err)
	}

	return out, nil
}

// Load returns the parse tree of the template file at path, from the cache
// when enabled. Parse failures are wrapped in [ErrParse].
func (e *Engine) Load(ctx context.Context, path string) (*Node, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, ErrReadTemplate.Wrap(err).With(slog.String("path", path))
	}

	tree, err := e.load(ctx, abs)
	if err != nil && !errors.Is(err, ErrFileNotFound) && !errors.Is(err, ErrReadTemplate) {
		return nil, parseFailure(err)
	}

	return tree, err
}

// renderFile renders a partial at the absolute path.
func (e *Engine) renderFile(
	ctx context.Context,
	path string,
	model Model,
	chain []string,
) (string, error) {
	tree, err := e.load(ctx, path)
	if err != nil {
		return "", err
	}

	return e.execute(ctx, tree, model, filepath.Dir(path),
		append(slices.Clip(chain), path))
}

func (e *Engine) execute(
	ctx context.Context,
	tree *Node,
	model Model,
	dir string,
	chain []string,
) (string, error) {
	r := &renderer{engine: e, dir: dir, chain: chain}

	var sb strings.Builder

	if err := r.render(ctx, &sb, tree.Children, model); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// load reads and parses the file at the absolute path, or fetches its tree
// from the cache. Errors are not wrapped in ErrParse.
func (e *Engine) load(ctx context.Context, path string) (*Node, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound.Wrap(err).With(slog.String("path", path))
		}

		return nil, ErrReadTemplate.Wrap(err).With(slog.String("path", path))
	}

	if e.useCache {
		if tree, ok := e.cache.Load(path); ok {
			e.logger.TraceContext(ctx, "template cache hit", slog.String("path", path))

			return tree, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrReadTemplate.Wrap(err).With(slog.String("path", path))
	}

	tree, err := Parse(string(data))
	if err != nil {
		return nil, annotate(err, slog.String("path", path))
	}

	e.logger.TraceContext(ctx, "template parsed",
		slog.String("path", path),
		slog.Int("source_bytes", len(data)),
		slog.Bool("cache", e.useCache))

	if e.useCache {
		tree, _ = e.cache.LoadOrStore(path, tree)
	}

	return tree, nil
}
