package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolve(t *testing.T, r kong.Resolver, command, name string) any {
	t.Helper()

	parent := &kong.Path{}
	if command != "" {
		parent.Command = &kong.Command{Name: command}
	}

	v, err := r.Resolve(nil, parent, &kong.Flag{Value: &kong.Value{Name: name}})
	if err != nil {
		t.Fatalf("Resolve(%q, %q): %v", command, name, err)
	}

	return v
}

func TestLoadYAML(t *testing.T) {
	const doc = `
log:
  level: debug
  time_layout: Kitchen
  pretty: false
serve:
  addr: ":9000"
  watch: true
ext: tmpl
port: 8080
ratio: 0.5
tags: [a, b, 3]
`

	r, err := loadYAML(context.Background())(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("loadYAML: %v", err)
	}

	tests := []struct {
		command string
		name    string
		want    any
	}{
		{"", "log-level", "debug"},
		{"", "log-time-layout", "Kitchen"},
		{"", "log-pretty", false},
		{"serve", "addr", ":9000"},
		{"serve", "watch", true},
		{"serve", "ext", "tmpl"},
		{"render", "ext", "tmpl"},
		{"render", "addr", nil},
		{"", "port", "8080"},
		{"", "ratio", "0.5"},
		{"", "tags", "a,b,3"},
		{"", "missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.name, func(t *testing.T) {
			if got := resolve(t, r, tt.command, tt.name); got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestLoadYAMLEmpty(t *testing.T) {
	r, err := loadYAML(context.Background())(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}

	if v := resolve(t, r, "", "log-level"); v != nil {
		t.Errorf("empty config resolved %#v", v)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadYAMLInvalid(t *testing.T) {
	_, err := loadYAML(context.Background())(strings.NewReader("log: [unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestCommandKeyPrecedence(t *testing.T) {
	r, err := loadYAML(context.Background())(strings.NewReader("ext: htm\nrender:\n  ext: txt\n"))
	if err != nil {
		t.Fatalf("loadYAML: %v", err)
	}

	if got := resolve(t, r, "render", "ext"); got != "txt" {
		t.Errorf("render ext = %#v, want %q", got, "txt")
	}

	if got := resolve(t, r, "serve", "ext"); got != "htm" {
		t.Errorf("serve ext = %#v, want %q", got, "htm")
	}
}
