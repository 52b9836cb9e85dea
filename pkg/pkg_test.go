package pkg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "stache" {
		t.Errorf("expected Name %q, got %q", "stache", Name)
	}
}

func TestVersion(t *testing.T) {
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("failed to read VERSION file: %v", err)
	}

	if want := strings.TrimSpace(string(buf)); Version != want {
		t.Errorf("expected Version %q, got %q", want, Version)
	}

	if strings.ContainsAny(Version, " \n") {
		t.Errorf("expected trimmed version, got %q", Version)
	}
}

func TestPrefix(t *testing.T) {
	p := Prefix()
	if p == "" || strings.HasPrefix(p, ".") {
		t.Errorf("unexpected prefix %q", p)
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath(ConfigFile + ".yaml")

	if filepath.Dir(got) != ConfigDir() {
		t.Errorf("expected %q under %q", got, ConfigDir())
	}

	if filepath.Base(ConfigDir()) != Prefix() {
		t.Errorf("expected config dir to end with %q, got %q", Prefix(), ConfigDir())
	}

	if filepath.Base(CacheDir()) != Prefix() {
		t.Errorf("expected cache dir to end with %q, got %q", Prefix(), CacheDir())
	}
}
