package view

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/ardnew/mung"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

const (
	// DefaultViewsPath is searched when no views path is configured.
	DefaultViewsPath = "./views"

	// EnvViews names the environment variable whose directories are
	// searched before the configured views path.
	EnvViews = "STACHE_VIEWS"

	// IndexView is rendered for an empty view name.
	IndexView = "index"
)

type config struct {
	viewsPath string
	ext       string
	cache     bool
	logger    log.Logger
}

// Option configures a [Service].
type Option func(*config)

// WithViewsPath sets the directories searched for views, separated by
// [os.PathListSeparator].
func WithViewsPath(list string) Option {
	return func(c *config) {
		if list != "" {
			c.viewsPath = list
		}
	}
}

// WithExtension sets the extension of view and partial files.
func WithExtension(ext string) Option {
	return func(c *config) {
		c.ext = ext
	}
}

// WithFileCache enables or disables reuse of parse trees.
func WithFileCache(enabled bool) Option {
	return func(c *config) {
		c.cache = enabled
	}
}

// WithLogger sets the logger used for request and watcher events.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Service renders views found along a search path.
type Service struct {
	engine *mustache.Engine
	dirs   []string
	logger log.Logger
}

// New returns a service configured by opts.
func New(opts ...Option) *Service {
	cfg := config{
		viewsPath: DefaultViewsPath,
		ext:       mustache.DefaultExtension,
		cache:     true,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Service{
		engine: mustache.New(
			mustache.WithExtension(cfg.ext),
			mustache.WithFileCache(cfg.cache),
			mustache.WithLogger(cfg.logger),
		),
		dirs:   searchPath(cfg.viewsPath, os.Getenv(EnvViews)),
		logger: cfg.logger,
	}
}

// searchPath composes the absolute, de-duplicated directories of list,
// preceded by those of prefix.
func searchPath(list, prefix string) []string {
	composed := mung.Make(
		mung.WithSubjectItems(list),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(filepath.SplitList(prefix)...),
	).String()

	var dirs []string

	for _, dir := range filepath.SplitList(composed) {
		if dir == "" {
			continue
		}

		abs, err := filepath.Abs(dir)
		if err != nil || slices.Contains(dirs, abs) {
			continue
		}

		dirs = append(dirs, abs)
	}

	return dirs
}

// Engine returns the engine rendering the service's views.
func (s *Service) Engine() *mustache.Engine { return s.engine }

// SearchPath returns the absolute directories searched for views, in order.
func (s *Service) SearchPath() []string { return slices.Clone(s.dirs) }

// Resolve returns the absolute path of view name. The name is a
// slash-separated path relative to a views directory, without extension,
// and cannot escape that directory. An empty name resolves [IndexView].
func (s *Service) Resolve(name string) (string, error) {
	rel := path.Clean("/" + name)[1:]
	if rel == "" {
		rel = IndexView
	}

	file := filepath.FromSlash(rel) + "." + s.engine.Extension()

	for _, dir := range s.dirs {
		candidate := filepath.Join(dir, file)

		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", mustache.ErrFileNotFound.
		Wrap(fmt.Errorf("view %q", name)).
		With(slog.String("view", name), slog.Any("search_path", s.dirs))
}

// RenderView renders view name with model.
func (s *Service) RenderView(
	ctx context.Context,
	name string,
	model mustache.Model,
) (string, error) {
	file, err := s.Resolve(name)
	if err != nil {
		return "", err
	}

	return s.engine.Render(ctx, file, model)
}
