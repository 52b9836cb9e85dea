package profile

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Profiler describes one profiling session.
type Profiler struct {
	Mode  string // one of Modes(); empty disables profiling
	Dir   string // output directory; empty uses the library default
	Quiet bool   // suppress the library's log messages
}

// Start begins profiling. It returns a no-op when profiling is compiled out,
// p.Mode is empty or p.Mode is not a supported mode. Stop is always safe to
// call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
