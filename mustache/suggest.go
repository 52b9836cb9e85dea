package mustache

import "github.com/sahilm/fuzzy"

// maxSuggestions bounds the candidates offered for a missing key.
const maxSuggestions = 3

// suggest returns the keys of m that fuzzily match key, best first.
func suggest(key string, m Model) []string {
	if key == "" || len(m) == 0 {
		return nil
	}

	matches := fuzzy.Find(key, m.Keys())

	out := make([]string, 0, min(len(matches), maxSuggestions))
	for _, match := range matches[:min(len(matches), maxSuggestions)] {
		out = append(out, match.Str)
	}

	return out
}
