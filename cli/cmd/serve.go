package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/model"
	"github.com/ardnew/stache/mustache"
	"github.com/ardnew/stache/profile"
	"github.com/ardnew/stache/view"
)

// DefaultAddr is the default listen address of [Serve].
const DefaultAddr = "localhost:8080"

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

// Serve renders views over HTTP.
type Serve struct {
	Addr    string `default:"${addr}"  help:"Listen address."                                   short:"a"`
	Views   string `default:"${views}" help:"Views search path (list separated like PATH)."`
	Data    string `help:"Directory of model files, one per view (VIEW.yaml, VIEW.json, ...)." short:"d" type:"path"`
	Ext     string `default:"${ext}"   help:"Template file extension."                          short:"e"`
	Watch   bool   `help:"Evict cached templates when their files change."                    short:"w"`
	NoCache bool   `help:"Disable the parsed template cache."`

	// listening, if set, receives the bound address once the server accepts
	// connections.
	listening chan<- net.Addr `kong:"-"`
}

// Run serves views until ctx is done.
func (s *Serve) Run(ctx context.Context) error {
	logger := log.Default()

	svc := view.New(
		view.WithViewsPath(s.Views),
		view.WithExtension(s.Ext),
		view.WithFileCache(!s.NoCache),
		view.WithLogger(logger),
	)

	mux := http.NewServeMux()
	mux.Handle("/", svc.Router(s.model))

	if profile.Enabled {
		mux.Handle("/debug/pprof/", http.DefaultServeMux)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Slog().Handler(), slog.LevelError),
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return ErrServe.Wrap(err).With(slog.String("addr", s.Addr))
	}

	if s.Watch && !s.NoCache {
		go func() {
			if err := svc.Watch(ctx); err != nil {
				logger.ErrorContext(ctx, "watch views", slog.Any("error", err))
			}
		}()
	}

	logger.InfoContext(ctx, "serving views",
		slog.String("addr", ln.Addr().String()),
		slog.Any("views", svc.SearchPath()),
		slog.String("data", s.Data),
		slog.Bool("watch", s.Watch))

	if s.listening != nil {
		s.listening <- ln.Addr()
	}

	done := make(chan error, 1)

	go func() { done <- server.Serve(ln) }()

	select {
	case err := <-done:
		return ErrServe.Wrap(err)

	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdown); err != nil {
		return ErrServe.Wrap(err)
	}

	if err := <-done; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return ErrServe.Wrap(err)
	}

	logger.InfoContext(ctx, "server stopped")

	return nil
}

// model loads the model of view name from the data directory, trying each
// of [model.Extensions] in order. A view without a model file renders with
// an empty model.
func (s *Serve) model(r *http.Request, name string) (mustache.Model, error) {
	if s.Data == "" {
		return nil, nil
	}

	rel := path.Clean("/" + name)[1:]
	if rel == "" {
		rel = view.IndexView
	}

	base := filepath.Join(s.Data, filepath.FromSlash(rel))

	for _, ext := range model.Extensions {
		file := base + ext

		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return model.Load(r.Context(), file, model.WithLogger(log.Default()))
	}

	return nil, nil
}
