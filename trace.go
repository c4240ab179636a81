package bertap

/*
trace.go declares the category constants shared by trace_on.go and
trace_off.go. Only this file (and the category constants) is compiled
unconditionally; the tracing implementation itself is gated behind the
"bertap_debug" build tag, mirroring the teacher's EventType/Tracer
split (evt.go, trc_on.go, trc_off.go) so a release build pays nothing
for diagnostics it never uses.
*/

/*
TraceCategory identifies a group of diagnostic events the tracer in
trace_on.go may be told to observe. Categories are a bitmask so BERTAP_DEBUG can enable
several at once (e.g. "measure,emit").
*/
type TraceCategory uint8

const (
	TraceNone TraceCategory = 0
	TraceAll  TraceCategory = 0xFF
)

const (
	TraceMeasure TraceCategory = 1 << iota // measurement pass recursion
	TraceEmit                              // emission pass recursion
	TraceCodec                             // identifier/length decode and encode
	TraceIO                                // source/sink reads, writes and rewinds
)

/*
EnvDebugVar is the environment variable consulted, at process start, to
populate the default tracer's enabled categories. Its value is a
comma-separated list of category names ("measure", "emit", "codec",
"io"), or "all". It has no effect unless this module was built with
"-tags bertap_debug".
*/
const EnvDebugVar = "BERTAP_DEBUG"

var categoryNames = map[string]TraceCategory{
	"all":     TraceAll,
	"none":    TraceNone,
	"measure": TraceMeasure,
	"emit":    TraceEmit,
	"codec":   TraceCodec,
	"io":      TraceIO,
}
