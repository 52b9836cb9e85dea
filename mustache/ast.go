package mustache

import (
	"fmt"
	"log/slog"
)

// RootValue is the value of the synthetic root node returned by [Build].
const RootValue = "root"

// Node is an element of a parse tree. Leaves ([KindText], [KindVariable],
// [KindPartial]) have no children. A tree is never modified after [Build]
// returns it, so it may be rendered concurrently.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
}

// Walk calls fn for n and each of its descendants in document order, with
// the depth of each node below n. It stops descending into a node when fn
// returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}

	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// Build assembles tokens into a tree owned by a synthetic root of kind
// [KindSection] and value [RootValue].
//
// A closing tag must name the innermost open section, otherwise Build fails
// with [ErrMismatchedSection]. Sections still open after the last token fail
// with [ErrUnclosedSection]. A closing tag with no open section is consumed
// without effect rather than popping the root, and comments are dropped.
func Build(tokens []Token) (*Node, error) {
	root := &Node{Kind: KindSection, Value: RootValue}
	stack := []*Node{root}

	for _, tok := range tokens {
		top := stack[len(stack)-1]

		switch tok.Kind {
		case KindText, KindVariable, KindPartial:
			top.Children = append(top.Children, &Node{Kind: tok.Kind, Value: tok.Value})

		case KindSection, KindInverted:
			node := &Node{Kind: tok.Kind, Value: tok.Value}
			top.Children = append(top.Children, node)
			stack = append(stack, node)

		case KindSectionEnd:
			if len(stack) == 1 {
				continue
			}

			if tok.Value != top.Value {
				return nil, ErrMismatchedSection.
					Wrap(fmt.Errorf("expected %q, got %q", top.Value, tok.Value)).
					With(slog.String("expected", top.Value), slog.String("got", tok.Value))
			}

			stack = stack[:len(stack)-1]

		case KindComment:
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1].Value

		return nil, ErrUnclosedSection.
			Wrap(fmt.Errorf("%q", open)).
			With(slog.String("section", open), slog.Int("depth", len(stack)-1))
	}

	return root, nil
}

// Parse tokenizes and builds text.
func Parse(text string) (*Node, error) {
	return Build(Tokenize(text))
}
