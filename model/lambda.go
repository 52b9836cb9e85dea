package model

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/stache/mustache"
)

// lambdaText is the variable bound to the rendered section interior.
const lambdaText = "text"

// lambda compiles src into a lambda. Compilation happens once, when the
// model is loaded, so malformed expressions fail before any render.
func (d *decoder) lambda(path, src string) (mustache.Lambda, error) {
	env := d.exprEnv("")

	program, err := expr.Compile(src, expr.Env(env), expr.AsKind(reflect.String))
	if err != nil {
		return nil, ErrLambdaCompile.Wrap(err).
			With(slog.String("key", path), slog.String("source", src))
	}

	logger := d.logger

	return func(ctx context.Context, text string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		result, err := vm.Run(program, d.exprEnv(text))
		if err != nil {
			return "", ErrLambdaEvaluate.Wrap(err).
				With(slog.String("key", path), slog.String("source", src))
		}

		out, ok := result.(string)
		if !ok {
			return "", ErrLambdaEvaluate.
				Wrap(fmt.Errorf("result of %q is %T, want string", path, result)).
				With(slog.String("key", path), slog.String("source", src))
		}

		logger.TraceContext(ctx, "lambda evaluated",
			slog.String("key", path),
			slog.Int("in_bytes", len(text)),
			slog.Int("out_bytes", len(out)))

		return out, nil
	}, nil
}

// exprEnv returns the variables of one evaluation.
func (d *decoder) exprEnv(text string) map[string]any {
	env := make(map[string]any, len(d.env)+1)
	maps.Copy(env, d.env)
	env[lambdaText] = text

	return env
}
