package model

//go:generate go tool stringer --linecomment --type Format --output format_string.go

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Format is the encoding of a model document.
type Format int

const (
	FormatYAML Format = iota // yaml
	FormatJSON               // json
	FormatHCL                // hcl
)

// Extensions lists the file extensions recognised by [FormatOf], in the
// order a caller probing for a model file should try them.
var Extensions = []string{".yaml", ".yml", ".json", ".hcl"}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ParseFormat parses a format name or file extension, ignoring case and a
// leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "hcl":
		return FormatHCL, nil
	default:
		return 0, ErrUnsupportedFormat.
			Wrap(fmt.Errorf("%q", s)).
			With(slog.String("format", s))
	}
}
