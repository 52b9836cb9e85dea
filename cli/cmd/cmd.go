package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/model"
	"github.com/ardnew/stache/mustache"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdinSource names standard input wherever a file path is expected.
const stdinSource = "-"

// stdout returns the writer a command prints to: w if set, the kong
// context's writer when running under kong, or [os.Stdout].
func stdout(ctx context.Context, w io.Writer) io.Writer {
	if w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// loadModel reads the model file at path, or returns an empty model if path
// is empty.
func loadModel(ctx context.Context, path string) (mustache.Model, error) {
	if path == "" {
		return mustache.Model{}, nil
	}

	return model.Load(ctx, path, model.WithLogger(log.Default()))
}

// readSource reads the template at path, or stdin if path is [stdinSource].
// A nil stdin reads [os.Stdin].
func readSource(path string, stdin io.Reader) (string, error) {
	if path == stdinSource {
		if stdin == nil {
			stdin = os.Stdin
		}

		text, err := io.ReadAll(stdin)
		if err != nil {
			return "", ErrReadInput.Wrap(err).With(slog.String("source", "stdin"))
		}

		return string(text), nil
	}

	text, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", mustache.ErrFileNotFound.Wrap(err).With(slog.String("path", path))
		}

		return "", mustache.ErrReadTemplate.Wrap(err).With(slog.String("path", path))
	}

	return string(text), nil
}
