package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML returns a [kong.ConfigurationLoader] for YAML config files.
//
// Nested mappings are flattened by joining keys with hyphens, so
//
//	log:
//	  level: debug
//	serve:
//	  addr: ":9000"
//
// supplies --log-level=debug and, for the serve command, --addr=:9000.
// Underscores may stand in for hyphens. Command-line flags override config
// file values.
func loadYAML(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).DecodeContext(ctx, &doc)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %w", err)
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// config implements [kong.Resolver] over flattened configuration keys.
type config map[string]any

func (c config) flatten(prefix string, doc map[string]any) {
	for key, value := range doc {
		key = strings.ReplaceAll(key, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		if nested, ok := value.(map[string]any); ok {
			c.flatten(key, nested)

			continue
		}

		c[key] = native(value)
	}
}

// native converts decoded YAML scalars to the forms kong parses: numbers
// as strings, sequences as comma-separated lists.
func native(value any) any {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, fmt.Sprint(native(item)))
		}

		return strings.Join(items, ",")
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver]. A key qualified by the selected
// command ("serve-addr") takes precedence over the bare flag name.
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	var names []string

	if parent != nil && parent.Command != nil {
		names = append(names, parent.Command.Name+"-"+flag.Name)
	}

	names = append(names, flag.Name)

	for _, name := range names {
		if value, ok := c[name]; ok {
			return value, nil
		}
	}

	return nil, nil
}
