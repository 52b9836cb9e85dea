package mustache

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func leaf(kind Kind, value string) *Node {
	return &Node{Kind: kind, Value: value}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []*Node
	}{
		{
			name: "flat",
			text: "Hi {{name}}{{> footer}}",
			want: []*Node{
				leaf(KindText, "Hi "),
				leaf(KindVariable, "name"),
				leaf(KindPartial, "footer"),
			},
		},
		{
			name: "nested sections",
			text: "{{#a}}x{{^b}}y{{/b}}{{/a}}z",
			want: []*Node{
				{Kind: KindSection, Value: "a", Children: []*Node{
					leaf(KindText, "x"),
					{Kind: KindInverted, Value: "b", Children: []*Node{
						leaf(KindText, "y"),
					}},
				}},
				leaf(KindText, "z"),
			},
		},
		{
			name: "comment dropped",
			text: "Visible {{! hidden }} Content",
			want: []*Node{
				leaf(KindText, "Visible "),
				leaf(KindText, " Content"),
			},
		},
		{
			name: "stray close at top level",
			text: "a{{/nothing}}b",
			want: []*Node{leaf(KindText, "a"), leaf(KindText, "b")},
		},
		{
			name: "section named root",
			text: "{{#root}}in{{/root}}",
			want: []*Node{
				{Kind: KindSection, Value: "root", Children: []*Node{
					leaf(KindText, "in"),
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if root.Kind != KindSection || root.Value != RootValue {
				t.Errorf("expected synthetic root, got %s %q", root.Kind, root.Value)
			}

			if diff := cmp.Diff(tt.want, root.Children); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "mismatched",
			text:    "{{#open}} ... {{/close}}",
			wantErr: ErrMismatchedSection,
			wantMsg: `expected "open", got "close"`,
		},
		{
			name:    "unclosed",
			text:    "{{#open}} ... ",
			wantErr: ErrUnclosedSection,
			wantMsg: `"open"`,
		},
		{
			name:    "unclosed names innermost",
			text:    "{{#outer}}{{^inner}}",
			wantErr: ErrUnclosedSection,
			wantMsg: `"inner"`,
		},
		{
			name:    "inverted closed by other name",
			text:    "{{^a}}{{/b}}",
			wantErr: ErrMismatchedSection,
			wantMsg: `expected "a", got "b"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBuild_DistinctErrorKinds(t *testing.T) {
	_, err := Parse("{{#a}}")
	if errors.Is(err, ErrMismatchedSection) {
		t.Error("unclosed section must not match mismatched section")
	}

	_, err = Parse("{{#a}}{{/b}}")
	if errors.Is(err, ErrUnclosedSection) {
		t.Error("mismatched section must not match unclosed section")
	}
}

func TestNode_Walk(t *testing.T) {
	root, err := Parse("{{#a}}{{b}}{{/a}}{{c}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string

	root.Walk(func(n *Node, depth int) bool {
		got = append(got, strings.Repeat(".", depth)+n.Value)

		return true
	})

	want := []string{"root", ".a", "..b", ".c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}

	var visited int

	root.Walk(func(n *Node, _ int) bool {
		visited++

		return n == root
	})

	if visited != 3 {
		t.Errorf("expected pruned walk to visit 3 nodes, got %d", visited)
	}
}
