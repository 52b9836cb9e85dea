package model

import "github.com/ardnew/stache/mustache"

// Predefined errors (sentinel values).
var (
	ErrUnsupportedFormat = mustache.NewError("unsupported model format")
	ErrUnsupportedValue  = mustache.NewError("unsupported model value")
	ErrReadModel         = mustache.NewError("failed to read model")
	ErrDecode            = mustache.NewError("failed to decode model")
	ErrLambdaCompile     = mustache.NewError("lambda compilation failed")
	ErrLambdaEvaluate    = mustache.NewError("lambda evaluation failed")
)
