// Package profile provides optional runtime profiling for stache.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof .
//	stache --pprof-mode=cpu --pprof-dir=/tmp/profiles render page.html
//
// Without the tag [Enabled] is false, [Modes] is empty and
// [Profiler.Start] returns a no-op.
//
// Profiles are written by github.com/pkg/profile as <mode>.pprof in the
// configured directory and read back with go tool pprof. Builds with the tag
// also register the net/http/pprof handlers, which stache serve exposes on
// its default mux.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
