//go:build !bertap_debug

package bertap

/*
trace_off.go is the default, zero-cost build: every trace hook is a
true no-op so the compiler can inline them away entirely. Build with
"-tags bertap_debug" to get trace_on.go's implementation instead.
*/

func traceEnter(_ TraceCategory, _ string, _ ...any) {}
func traceExit(_ TraceCategory, _ string, _ ...any)  {}
func traceEvent(_ TraceCategory, _ string, _ ...any) {}
func traceHex(_ string, _ int64, _ []byte)           {}

// EnableDebug and DisableDebug are no-ops without the bertap_debug tag.
func EnableDebug(_ ...string) {}
func DisableDebug()           {}
