//go:build bertap_debug

package bertap

import "testing"

func TestParseTraceEnv(t *testing.T) {
	parseTraceEnv("measure,emit")
	if !enabled(TraceMeasure) || !enabled(TraceEmit) {
		t.Error("parseTraceEnv(\"measure,emit\") did not enable both categories")
	}
	if enabled(TraceCodec) || enabled(TraceIO) {
		t.Error("parseTraceEnv(\"measure,emit\") enabled an unrequested category")
	}

	parseTraceEnv("all")
	if !enabled(TraceAll) {
		t.Error("parseTraceEnv(\"all\") did not enable every category")
	}

	parseTraceEnv("none")
	if enabled(TraceAll) {
		t.Error("parseTraceEnv(\"none\") left categories enabled")
	}

	// Unknown names are ignored rather than rejected.
	parseTraceEnv("bogus")
	if enabled(TraceAll) {
		t.Error("parseTraceEnv(\"bogus\") unexpectedly enabled something")
	}
}

func TestEnableDisableDebug(t *testing.T) {
	DisableDebug()
	EnableDebug("codec")
	if !enabled(TraceCodec) {
		t.Error("EnableDebug(\"codec\") did not enable TraceCodec")
	}
	if enabled(TraceIO) {
		t.Error("EnableDebug(\"codec\") unexpectedly enabled TraceIO")
	}
	DisableDebug()
	if enabled(TraceAll) {
		t.Error("DisableDebug() left a category enabled")
	}
}

func TestFormatArgs(t *testing.T) {
	if got := formatArgs(nil); got != "()" {
		t.Errorf("formatArgs(nil) = %q, want \"()\"", got)
	}
	if got := formatArgs([]any{1, "two", true}); got != "(1, two, true)" {
		t.Errorf("formatArgs(...) = %q, want \"(1, two, true)\"", got)
	}
}

func TestTraceEnterExitEvent_doNotPanic(t *testing.T) {
	EnableDebug("all")
	defer DisableDebug()

	traceEnter(TraceMeasure, "collectIndef", int64(0), budgetTop)
	traceExit(TraceMeasure, "collectIndef", int64(1), int64(1), nil)
	traceEvent(TraceEmit, "writeTap", "eoc")
	traceHex("content", 4, []byte{0x41, 0x42})
}
