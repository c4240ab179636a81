//go:build !bertap_debug

package bertap

import "testing"

func TestTrace_noopsWithoutDebugTag(t *testing.T) {
	// None of these should panic or block; they are true no-ops in a
	// release build.
	traceEnter(TraceAll, "fn", 1, "two", true)
	traceExit(TraceAll, "fn", nil)
	traceEvent(TraceAll, "fn")
	traceHex("label", 0, []byte{0x01, 0x02})
	EnableDebug("measure", "emit")
	DisableDebug()
}
