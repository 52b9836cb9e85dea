package view

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ardnew/stache/mustache"
)

// ContentType is the media type of rendered views.
const ContentType = "text/html; charset=utf-8"

// ModelFunc builds the model of a request for view name.
type ModelFunc func(r *http.Request, name string) (mustache.Model, error)

// WriteHTML writes body as a text/html response with status.
func WriteHTML(w http.ResponseWriter, status int, body string) error {
	h := w.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	_, err := io.WriteString(w, body)

	return err
}

// Handler serves view name for every request.
func (s *Service) Handler(name string, models ModelFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, name, models)
	})
}

// Router serves GET requests by rendering the view named by the request
// path, [IndexView] for the root.
func (s *Service) Router(models ModelFunc) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{view...}", func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, r.PathValue("view"), models)
	})

	return mux
}

func (s *Service) serve(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	models ModelFunc,
) {
	ctx := r.Context()

	model := mustache.Model{}

	if models != nil {
		m, err := models(r, name)
		if err != nil {
			s.fail(w, r, name, http.StatusInternalServerError, err)

			return
		}

		if m != nil {
			model = m
		}
	}

	body, err := s.RenderView(ctx, name, model)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, mustache.ErrFileNotFound) && !errors.Is(err, mustache.ErrParse) {
			status = http.StatusNotFound
		}

		s.fail(w, r, name, status, err)

		return
	}

	if err := WriteHTML(w, http.StatusOK, body); err != nil {
		s.logger.DebugContext(ctx, "write response",
			slog.String("view", name), slog.Any("error", err))

		return
	}

	s.logger.InfoContext(ctx, "view rendered",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("view", name),
		slog.Int("bytes", len(body)))
}

func (s *Service) fail(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	status int,
	err error,
) {
	attrs := []slog.Attr{
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("view", name),
		slog.Int("status", status),
		slog.Any("error", err),
	}

	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "view failed", attrs...)
	} else {
		s.logger.WarnContext(r.Context(), "view not found", attrs...)
	}

	http.Error(w, http.StatusText(status), status)
}
