package mustache

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValue_Kind(t *testing.T) {
	tests := []struct {
		value Value
		want  ValueKind
	}{
		{String("x"), ValueString},
		{Model{}, ValueModel},
		{Array{}, ValueArray},
		{Lambda(func(context.Context, string) (string, error) { return "", nil }), ValueLambda},
		{Bool(true), ValueBool},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAs(t *testing.T) {
	if got := As[String](String("hi")); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}

	if got := As[Bool](Bool(true)); !bool(got) {
		t.Error("expected true")
	}

	m := As[Model](Model{"k": String("v")})
	if m["k"] != String("v") {
		t.Errorf("expected model entry, got %v", m["k"])
	}
}

func TestAs_WrongVariantPanics(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		call  func(Value)
	}{
		{"bool as string", Bool(true), func(v Value) { As[String](v) }},
		{"string as array", String("x"), func(v Value) { As[Array](v) }},
		{"nil as model", nil, func(v Value) { As[Model](v) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}

				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrWrongVariant) {
					t.Errorf("expected ErrWrongVariant, got %v", r)
				}
			}()

			tt.call(tt.value)
		})
	}
}

func TestModel_Set(t *testing.T) {
	m := Model{}

	if err := m.Set("name", String("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := m.Set("name", String("b"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	if m["name"] != String("a") {
		t.Errorf("expected original value kept, got %v", m["name"])
	}
}

func TestModel_KeysAndLookup(t *testing.T) {
	m := Model{"b": Bool(true), "a": String("x"), "c": Array{}}

	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	if _, ok := m.Lookup("missing"); ok {
		t.Error("expected missing key")
	}

	if v, ok := m.Lookup("b"); !ok || v != Bool(true) {
		t.Errorf("expected Bool(true), got %v", v)
	}
}
