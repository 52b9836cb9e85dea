// Package model loads template contexts from data files.
//
// YAML and JSON documents are decoded with goccy/go-yaml, HCL documents with
// hashicorp/hcl. Whatever the format, the top level must be a mapping, and
// values convert to [mustache.Value] variants as follows:
//
//   - strings become [mustache.String];
//   - booleans become [mustache.Bool];
//   - numbers become their shortest decimal [mustache.String];
//   - mappings become [mustache.Model];
//   - sequences of mappings become [mustache.Array];
//   - a mapping whose only key is "$lambda" becomes a [mustache.Lambda]
//     evaluating the expr-lang expression it holds, with the rendered
//     section interior bound to the variable text;
//   - null entries are omitted.
//
// Anything else fails with [ErrUnsupportedValue], naming the offending key.
//
//	title: Members
//	members:
//	  - name: Ada
//	  - name: Grace
//	shout:
//	  $lambda: upper(text)
package model
