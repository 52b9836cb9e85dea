package mustache

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// ValueKind identifies the variant of a [Value].
type ValueKind int

const (
	ValueString ValueKind = iota // string
	ValueModel                   // model
	ValueArray                   // array
	ValueLambda                  // lambda
	ValueBool                    // bool
)

// Value is the data a tag resolves to. It is implemented only by [String],
// [Model], [Array], [Lambda] and [Bool].
type Value interface {
	Kind() ValueKind
	value()
}

// String is substituted by variable tags.
type String string

// Model maps tag identifiers to values. It is the context of a render.
// Lookups never fall back to an enclosing model.
type Model map[string]Value

// Array repeats a section once per element, each element becoming the whole
// context of its iteration.
type Array []Model

// Lambda receives the rendered interior of its section and returns the text
// that replaces it.
type Lambda func(ctx context.Context, text string) (string, error)

// Bool includes a section when true and an inverted section when false.
type Bool bool

func (String) Kind() ValueKind { return ValueString }
func (Model) Kind() ValueKind  { return ValueModel }
func (Array) Kind() ValueKind  { return ValueArray }
func (Lambda) Kind() ValueKind { return ValueLambda }
func (Bool) Kind() ValueKind   { return ValueBool }

func (String) value() {}
func (Model) value()  {}
func (Array) value()  {}
func (Lambda) value() {}
func (Bool) value()   {}

// As returns v as the variant T. It panics with an error wrapping
// [ErrWrongVariant] when v holds a different variant, which indicates a bug
// in the caller rather than in a template.
func As[T Value](v Value) T {
	t, ok := v.(T)
	if !ok {
		var want T

		panic(ErrWrongVariant.
			Wrap(fmt.Errorf("want %s, have %s", variant(want), variant(v))).
			With(slog.String("want", variant(want)), slog.String("have", variant(v))))
	}

	return t
}

// variant names the variant held by v.
func variant(v Value) string {
	if v == nil {
		return "nil"
	}

	return v.Kind().String()
}

// Set adds key to m. It returns an error wrapping [ErrDuplicateKey] when m
// already holds key, leaving the existing value in place.
func (m Model) Set(key string, v Value) error {
	if _, ok := m[key]; ok {
		return ErrDuplicateKey.
			Wrap(fmt.Errorf("%q", key)).
			With(slog.String("key", key))
	}

	m[key] = v

	return nil
}

// Lookup returns the value of key and whether it is present.
func (m Model) Lookup(key string) (Value, bool) {
	v, ok := m[key]

	return v, ok
}

// Keys returns the keys of m in sorted order.
func (m Model) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}
