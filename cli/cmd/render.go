package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/ardnew/stache/log"
	"github.com/ardnew/stache/mustache"
)

// Render renders a template file, or standard input, with an optional
// model file.
type Render struct {
	Template string `arg:"" default:"-" help:"Template file, or '-' for stdin." optional:""`
	Data     string `help:"Model file (.yaml, .yml, .json, .hcl)." short:"d" type:"path"`
	Output   string `help:"Write output to file (atomically)." short:"o" type:"path"`
	Partials string `default:"." help:"Directory partials of a stdin template resolve against." type:"path"`
	Ext      string `default:"${ext}" help:"Template file extension." short:"e"`
	NoCache  bool   `help:"Disable the parsed template cache."`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

// Run renders the template and writes the result.
func (r *Render) Run(ctx context.Context) error {
	data, err := loadModel(ctx, r.Data)
	if err != nil {
		return withCommand(err, "render")
	}

	engine := mustache.New(
		mustache.WithExtension(r.Ext),
		mustache.WithFileCache(!r.NoCache),
		mustache.WithLogger(log.Default()),
	)

	out, err := r.render(ctx, engine, data)
	if err != nil {
		return withCommand(err, "render")
	}

	if r.Output != "" {
		if err := atomic.WriteFile(r.Output, strings.NewReader(out)); err != nil {
			return ErrWriteOutput.Wrap(err).With(slog.String("path", r.Output))
		}

		log.DebugContext(ctx, "rendered",
			slog.String("template", r.Template),
			slog.String("output", r.Output),
			slog.Int("bytes", len(out)))

		return nil
	}

	if _, err := io.WriteString(stdout(ctx, r.Stdout), out); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

func (r *Render) render(
	ctx context.Context,
	engine *mustache.Engine,
	data mustache.Model,
) (string, error) {
	if r.Template != stdinSource {
		return engine.Render(ctx, r.Template, data)
	}

	text, err := readSource(stdinSource, r.Stdin)
	if err != nil {
		return "", err
	}

	return engine.RenderString(ctx, text, r.Partials, data)
}
