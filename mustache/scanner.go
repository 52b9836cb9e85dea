package mustache

import "strings"

// scanner is a forward-only cursor over template text.
type scanner struct {
	text string
	pos  int
}

func newScanner(text string) *scanner {
	return &scanner{text: text}
}

// eof reports whether the cursor has reached the end of the input.
func (s *scanner) eof() bool { return s.pos >= len(s.text) }

// matches reports whether lit occurs at the cursor. The cursor does not move.
func (s *scanner) matches(lit string) bool {
	return strings.HasPrefix(s.text[s.pos:], lit)
}

// advance moves the cursor n bytes forward, stopping at the end of input.
func (s *scanner) advance(n int) {
	if n <= 0 {
		return
	}

	s.pos = min(s.pos+n, len(s.text))
}

// scanUntil consumes input up to, not including, the next occurrence of
// delim and returns it. Without a further delim it consumes the remainder.
func (s *scanner) scanUntil(delim string) string {
	start := s.pos

	if i := strings.Index(s.text[s.pos:], delim); i >= 0 {
		s.pos += i
	} else {
		s.pos = len(s.text)
	}

	return s.text[start:s.pos]
}
