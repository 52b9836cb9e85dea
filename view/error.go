package view

import "github.com/ardnew/stache/mustache"

// ErrWatch reports a failure to set up filesystem watching.
var ErrWatch = mustache.NewError("failed to watch views")
