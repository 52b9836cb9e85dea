package mustache

//go:generate go tool stringer --linecomment --type Kind,ValueKind --output kind_string.go

import "strings"

// Tag delimiters. They are fixed and cannot be escaped.
const (
	OpenDelim  = "{{"
	CloseDelim = "}}"
)

// Kind identifies a token, and the node built from it.
type Kind int

const (
	KindText       Kind = iota // text
	KindVariable               // variable
	KindSection                // section
	KindSectionEnd             // section end
	KindInverted               // inverted section
	KindComment                // comment
	KindPartial                // partial
)

// sigils maps the first character of a tag to the kind it introduces.
var sigils = map[byte]Kind{
	'#': KindSection,
	'/': KindSectionEnd,
	'^': KindInverted,
	'!': KindComment,
	'>': KindPartial,
}

// Token is one lexical unit of a template.
//
// Value holds the literal text of a [KindText] token, or the trimmed
// identifier of a tag with its sigil removed. Raw holds the untrimmed
// interior of a tag, or the text itself.
type Token struct {
	Kind  Kind
	Value string
	Raw   string
}

// Tokenize splits text into a flat sequence of tokens. It never fails: an
// unterminated tag consumes the rest of the input, and empty tags produce no
// token.
func Tokenize(text string) []Token {
	var tokens []Token

	s := newScanner(text)

	for {
		if lit := s.scanUntil(OpenDelim); lit != "" {
			tokens = append(tokens, Token{Kind: KindText, Value: lit, Raw: lit})
		}

		if s.eof() {
			break
		}

		s.advance(len(OpenDelim))
		raw := s.scanUntil(CloseDelim)
		s.advance(len(CloseDelim))

		if tok, ok := classify(raw); ok {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// classify builds the token for a tag interior.
func classify(raw string) (Token, bool) {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return Token{}, false
	}

	if kind, ok := sigils[tag[0]]; ok {
		return Token{Kind: kind, Value: strings.TrimSpace(tag[1:]), Raw: raw}, true
	}

	return Token{Kind: KindVariable, Value: tag, Raw: raw}, true
}
