package mustache

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// renderer walks a tree against a context. One renderer exists per template
// file being rendered; partials get their own.
type renderer struct {
	engine *Engine
	dir    string   // directory partials are resolved against
	chain  []string // files being rendered, outermost first
}

// render writes nodes to sb in document order.
func (r *renderer) render(
	ctx context.Context,
	sb *strings.Builder,
	nodes []*Node,
	model Model,
) error {
	for _, node := range nodes {
		var err error

		switch node.Kind {
		case KindText:
			sb.WriteString(node.Value)

		case KindVariable:
			err = r.variable(sb, node, model)

		case KindSection:
			err = r.section(ctx, sb, node, model)

		case KindInverted:
			err = r.inverted(ctx, sb, node, model)

		case KindPartial:
			err = r.partial(ctx, sb, node, model)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// variable writes the string bound to node. Unbound variables render
// nothing.
func (r *renderer) variable(sb *strings.Builder, node *Node, model Model) error {
	v, ok := model[node.Value]
	if !ok {
		return nil
	}

	s, ok := v.(String)
	if !ok {
		return invalidModel(node, v)
	}

	sb.WriteString(string(s))

	return nil
}

func (r *renderer) section(
	ctx context.Context,
	sb *strings.Builder,
	node *Node,
	model Model,
) error {
	v, err := r.lookup(node, model)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case Array:
		for _, elem := range v {
			if err := r.render(ctx, sb, node.Children, elem); err != nil {
				return err
			}
		}

	case Lambda:
		if v == nil {
			return invalidModel(node, v)
		}

		var inner strings.Builder

		if err := r.render(ctx, &inner, node.Children, model); err != nil {
			return err
		}

		out, err := v(ctx, inner.String())
		if err != nil {
			return annotate(err, slog.String("section", node.Value))
		}

		sb.WriteString(out)

	case Bool:
		if v {
			return r.render(ctx, sb, node.Children, model)
		}

	default:
		return invalidModel(node, v)
	}

	return nil
}

// inverted renders node only for a false [Bool]. Other variants render
// nothing.
func (r *renderer) inverted(
	ctx context.Context,
	sb *strings.Builder,
	node *Node,
	model Model,
) error {
	v, err := r.lookup(node, model)
	if err != nil {
		return err
	}

	if b, ok := v.(Bool); ok && !bool(b) {
		return r.render(ctx, sb, node.Children, model)
	}

	return nil
}

// partial renders the file named by node, found next to the current file,
// with the current context.
func (r *renderer) partial(
	ctx context.Context,
	sb *strings.Builder,
	node *Node,
	model Model,
) error {
	path := filepath.Join(r.dir, node.Value+"."+r.engine.ext)

	if depth := len(r.chain); depth > r.engine.maxDepth {
		return ErrMaxDepthExceeded.
			Wrap(fmt.Errorf("%d partials deep including %q", depth, path)).
			With(slog.Int("max_depth", r.engine.maxDepth), slog.Any("chain", r.chain))
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := r.engine.renderFile(ctx, path, model, r.chain)
	if err != nil {
		return err
	}

	sb.WriteString(out)

	return nil
}

// lookup resolves a section key, which must be bound.
func (r *renderer) lookup(node *Node, model Model) (Value, error) {
	v, ok := model[node.Value]
	if ok {
		return v, nil
	}

	cause := fmt.Errorf("%q", node.Value)

	hints := suggest(node.Value, model)
	if len(hints) > 0 {
		cause = fmt.Errorf("%q (did you mean %q?)", node.Value, hints[0])
	}

	return nil, ErrMissingKey.
		Wrap(cause).
		With(
			slog.String("key", node.Value),
			slog.String("tag", node.Kind.String()),
			slog.Any("suggestions", hints),
		)
}

func invalidModel(node *Node, v Value) error {
	return ErrInvalidModel.
		Wrap(fmt.Errorf("%s %q is bound to %s", node.Kind, node.Value, variant(v))).
		With(slog.String("key", node.Value), slog.String("value", variant(v)))
}
