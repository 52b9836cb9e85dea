// Package mustache implements a small subset of the Mustache template
// language.
//
// Supported tags are variables ({{name}}), sections ({{#name}}...{{/name}}),
// inverted sections ({{^name}}...{{/name}}), comments ({{! text }}) and
// partials ({{> name}}). Delimiters are fixed and output is never escaped.
//
// Templates are rendered against a [Model], a map from identifiers to the
// variants of [Value]:
//
//   - a variable renders its [String]; unbound variables render nothing;
//   - a section over an [Array] renders once per element, the element
//     replacing the whole context;
//   - a section over a [Lambda] renders its interior and substitutes the
//     text the lambda returns for it;
//   - a section over a [Bool] renders when true, an inverted section when
//     false.
//
// Section identifiers must be bound. Lookups never search enclosing
// contexts.
//
// A partial named p is read from p plus the engine's extension in the
// directory of the template that includes it, and rendered with the same
// context:
//
//	engine := mustache.New(mustache.WithExtension("mustache"))
//	out, err := engine.Render(ctx, "views/index.mustache", mustache.Model{
//		"title": mustache.String("Hello"),
//	})
//
// Parse trees are cached per absolute path unless disabled with
// [WithFileCache]. Errors wrap the sentinels declared in this package.
package mustache
