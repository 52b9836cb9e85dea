// Package cli contains the command line interface of stache.
//
// # Usage
//
//	stache [flags] [render] <template|-> [--data FILE] [--output FILE]
//	stache dump tokens|tree <template>
//	stache serve [--addr ADDR] [--views LIST] [--data DIR] [--watch]
//
// render is the default command, so "stache page.html --data page.yaml"
// renders page.html with the model in page.yaml.
//
// # Configuration
//
// Flag defaults may be set in $XDG_CONFIG_HOME/stache/config.yaml (or the
// platform's equivalent). Keys are flag names, with hyphens or underscores,
// and may be nested by command or group:
//
//	log:
//	  level: debug
//	  format: text
//	serve:
//	  addr: ":9000"
//	  watch: true
//
// Flags on the command line override the configuration file.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: json or text
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --[no-]log-caller: include the source location of each record
//   - --[no-]log-pretty: colourise text output
//
// # Profiling Options
//
// Available only when built with the pprof build tag:
//
//   - --pprof-mode: cpu, heap, allocs, block, mutex, trace, ...
//   - --pprof-dir: output directory (default: the user cache directory)
package cli
