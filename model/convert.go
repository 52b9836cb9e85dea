package model

import (
	"fmt"
	"log/slog"
	"math/big"
	"strconv"

	"github.com/ardnew/stache/mustache"
)

// model converts a native mapping found at path.
func (d *decoder) model(path string, native map[string]any) (mustache.Model, error) {
	m := make(mustache.Model, len(native))

	for key, elem := range native {
		if elem == nil {
			continue
		}

		v, err := d.value(join(path, key), elem)
		if err != nil {
			return nil, err
		}

		if err := m.Set(key, v); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// value converts one native value found at path.
func (d *decoder) value(path string, native any) (mustache.Value, error) {
	switch v := native.(type) {
	case string:
		return mustache.String(v), nil

	case bool:
		return mustache.Bool(v), nil

	case int:
		return mustache.String(strconv.Itoa(v)), nil

	case int64:
		return mustache.String(strconv.FormatInt(v, 10)), nil

	case uint64:
		return mustache.String(strconv.FormatUint(v, 10)), nil

	case float64:
		return mustache.String(strconv.FormatFloat(v, 'f', -1, 64)), nil

	case *big.Float:
		return mustache.String(v.Text('f', -1)), nil

	case map[string]any:
		if src, ok := lambdaSource(v); ok {
			return d.lambda(path, src)
		}

		return d.model(path, v)

	case []any:
		arr := make(mustache.Array, 0, len(v))

		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, unsupported(fmt.Sprintf("%s[%d]", path, i), elem,
					"array elements must be mappings")
			}

			m, err := d.model(fmt.Sprintf("%s[%d]", path, i), obj)
			if err != nil {
				return nil, err
			}

			arr = append(arr, m)
		}

		return arr, nil

	default:
		return nil, unsupported(path, native, "")
	}
}

// lambdaSource reports whether m is a lambda mapping, returning its source.
func lambdaSource(m map[string]any) (string, bool) {
	if len(m) != 1 {
		return "", false
	}

	src, ok := m[LambdaKey].(string)

	return src, ok
}

func unsupported(path string, native any, reason string) error {
	msg := fmt.Sprintf("%q has type %T", path, native)
	if reason != "" {
		msg += ": " + reason
	}

	return ErrUnsupportedValue.
		Wrap(fmt.Errorf("%s", msg)).
		With(slog.String("key", path), slog.String("type", fmt.Sprintf("%T", native)))
}

// join appends key to a dotted path.
func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
