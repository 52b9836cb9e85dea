package model

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

// LambdaKey marks a mapping as a lambda expression.
const LambdaKey = "$lambda"

// decoder converts native values to template values.
type decoder struct {
	env    map[string]any // extra variables visible to lambdas
	logger log.Logger
}

// Option configures decoding.
type Option func(*decoder)

// WithEnv makes the entries of env visible to lambda expressions alongside
// text. An entry named text is shadowed.
func WithEnv(env map[string]any) Option {
	return func(d *decoder) {
		d.env = maps.Clone(env)
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(d *decoder) {
		d.logger = logger
	}
}

func newDecoder(opts ...Option) *decoder {
	d := &decoder{}

	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}

	return d
}

// Load reads the model file at path, choosing the format from its
// extension.
func Load(ctx context.Context, path string, opts ...Option) (mustache.Model, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mustache.ErrFileNotFound.Wrap(err).With(slog.String("path", path))
		}

		return nil, ErrReadModel.Wrap(err).With(slog.String("path", path))
	}

	return newDecoder(opts...).decode(ctx, data, format, path)
}

// Decode reads a model document in format from r.
func Decode(
	ctx context.Context,
	r io.Reader,
	format Format,
	opts ...Option,
) (mustache.Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadModel.Wrap(err).With(slog.String("source", "reader"))
	}

	return newDecoder(opts...).decode(ctx, data, format, "<reader>")
}

// FromMap converts a native map, as produced by most decoders, to a model.
func FromMap(m map[string]any, opts ...Option) (mustache.Model, error) {
	return newDecoder(opts...).model("", m)
}

func (d *decoder) decode(
	ctx context.Context,
	data []byte,
	format Format,
	name string,
) (mustache.Model, error) {
	var (
		native map[string]any
		err    error
	)

	switch format {
	case FormatYAML, FormatJSON:
		err = yaml.UnmarshalContext(ctx, data, &native)
		if err != nil {
			err = ErrDecode.Wrap(err).With(
				slog.String("source", name),
				slog.String("format", format.String()))
		}

	case FormatHCL:
		native, err = decodeHCL(data, name)

	default:
		err = ErrUnsupportedFormat.With(slog.String("format", format.String()))
	}

	if err != nil {
		return nil, err
	}

	m, err := d.model("", native)
	if err != nil {
		return nil, err
	}

	d.logger.TraceContext(ctx, "model decoded",
		slog.String("source", name),
		slog.String("format", format.String()),
		slog.Int("keys", len(m)))

	return m, nil
}
