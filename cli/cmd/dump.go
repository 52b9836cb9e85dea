package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/stache/mustache"
)

var (
	kindStyle = map[mustache.Kind]lipgloss.Style{
		mustache.KindText:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		mustache.KindVariable:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		mustache.KindSection:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		mustache.KindSectionEnd: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		mustache.KindInverted:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		mustache.KindComment:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		mustache.KindPartial:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	guideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// kindWidth is the column width of token kinds, wide enough for the longest.
const kindWidth = len("inverted section")

// Dump prints debugging views of a template.
type Dump struct {
	Tokens DumpTokens `cmd:"" help:"Print the token stream of a template."`
	Tree   DumpTree   `cmd:"" help:"Print the parse tree of a template."`
}

// DumpTokens prints one line per token: its kind and quoted value.
type DumpTokens struct {
	Template string `arg:"" help:"Template file, or '-' for stdin."`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

// Run prints the tokens of the template.
func (d *DumpTokens) Run(ctx context.Context) error {
	text, err := readSource(d.Template, d.Stdin)
	if err != nil {
		return withCommand(err, "dump tokens")
	}

	var b strings.Builder

	for _, tok := range mustache.Tokenize(text) {
		kind := fmt.Sprintf("%-*s", kindWidth, tok.Kind)
		fmt.Fprintf(&b, "%s %s\n",
			kindStyle[tok.Kind].Render(kind),
			valueStyle.Render(fmt.Sprintf("%q", tok.Value)))
	}

	_, err = io.WriteString(stdout(ctx, d.Stdout), b.String())
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// DumpTree prints the parse tree, indenting children below their section.
type DumpTree struct {
	Template string `arg:"" help:"Template file, or '-' for stdin."`

	Stdin  io.Reader `kong:"-"`
	Stdout io.Writer `kong:"-"`
}

// Run prints the parse tree of the template.
func (d *DumpTree) Run(ctx context.Context) error {
	text, err := readSource(d.Template, d.Stdin)
	if err != nil {
		return withCommand(err, "dump tree")
	}

	tree, err := mustache.Parse(text)
	if err != nil {
		return withCommand(mustache.ErrParse.Wrap(err), "dump tree")
	}

	var b strings.Builder

	tree.Walk(func(node *mustache.Node, depth int) bool {
		b.WriteString(guideStyle.Render(strings.Repeat("│ ", depth)))
		b.WriteString(kindStyle[node.Kind].Render(node.Kind.String()))
		b.WriteByte(' ')
		b.WriteString(valueStyle.Render(fmt.Sprintf("%q", node.Value)))
		b.WriteByte('\n')

		return true
	})

	_, err = io.WriteString(stdout(ctx, d.Stdout), b.String())
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
