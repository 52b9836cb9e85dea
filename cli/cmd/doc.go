// Package cmd implements the stache subcommands: render, dump and serve.
package cmd
