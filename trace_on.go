//go:build bertap_debug

package bertap

/*
trace_on.go implements the diagnostic tracer enabled by building or
running this module with "-tags bertap_debug". It writes one line per
traced event to stderr, gated by the category bitmask parsed from
BERTAP_DEBUG at init time (or set later via EnableDebug). This mirrors
the teacher's DefaultTracer/EventType split (trc_on.go, evt.go) trimmed
to the four categories this rewriter actually has: measurement, emission,
codec and I/O.
*/

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

var (
	traceMu      sync.Mutex
	traceEnabled TraceCategory = TraceNone
	traceOut              = os.Stderr
)

func init() {
	if v := os.Getenv(EnvDebugVar); v != "" {
		parseTraceEnv(v)
	}
}

func parseTraceEnv(v string) {
	var mask TraceCategory
	for _, name := range strings.Split(v, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if c, ok := categoryNames[name]; ok {
			mask |= c
		}
	}
	traceMu.Lock()
	traceEnabled = mask
	traceMu.Unlock()
}

// EnableDebug enables the named categories ("measure", "emit", "codec",
// "io", or "all") in addition to those already enabled, including any
// that BERTAP_DEBUG set at startup.
func EnableDebug(categories ...string) {
	traceMu.Lock()
	for _, name := range categories {
		if c, ok := categoryNames[strings.ToLower(name)]; ok {
			traceEnabled |= c
		}
	}
	traceMu.Unlock()
}

// DisableDebug turns off all tracing categories.
func DisableDebug() {
	traceMu.Lock()
	traceEnabled = TraceNone
	traceMu.Unlock()
}

func enabled(c TraceCategory) bool {
	traceMu.Lock()
	on := traceEnabled&c != 0
	traceMu.Unlock()
	return on
}

func traceEnter(c TraceCategory, fn string, args ...any) {
	if !enabled(c) {
		return
	}
	write("→ " + fn + formatArgs(args))
}

func traceExit(c TraceCategory, fn string, rets ...any) {
	if !enabled(c) {
		return
	}
	write("← " + fn + " => " + formatArgs(rets))
}

func traceEvent(c TraceCategory, fn string, args ...any) {
	if !enabled(c) {
		return
	}
	write("  • " + fn + formatArgs(args))
}

// traceHex logs a labeled hex dump of data at its absolute input or
// output offset. Gated on TraceIO; this is the "BERTAP_DEBUG=io" dump
// for diagnosing a malformed stream byte by byte.
func traceHex(label string, off int64, data []byte) {
	if !enabled(TraceIO) {
		return
	}
	write(join([]string{label, "@" + itoa64(off), "(" + itoa(len(data)) + " bytes)", hexstr(data)}, " "))
}

func formatArgs(args []any) string {
	if len(args) == 0 {
		return "()"
	}
	b := newStrBuilder()
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", a)
	}
	b.WriteByte(')')
	return b.String()
}

func write(line string) {
	traceMu.Lock()
	fmt.Fprintln(traceOut, line)
	traceMu.Unlock()
}
