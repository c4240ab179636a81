package bertap

/*
convert.go is the driver, spec §4.4: size the input, allocate the
IndefiniteList, run measurement then emission in that fixed order, and
propagate a single success/failure result. Named and documented in the
style of the teacher's package-level Marshal/Unmarshal (runtime.go).
*/

// ConvertOptions selects the driver's operating mode.
type ConvertOptions struct {
	// WholeFile selects spec §4.4's "convert-whole-file" mode: both
	// passes run with remaining = DEFINITE(file_size), so every input
	// byte is accounted for. When false (the default), both passes
	// run with remaining = TOP: exactly one outermost value is
	// processed and any trailing bytes are ignored.
	WholeFile bool
}

// Convert rewrites every indefinite-length constructed value readable
// from src into definite-length form, writing the result to dst. It
// performs the measurement pass, rewinds src, then performs the
// emission pass — src must support [Source.Rewind] back to its exact
// starting position for this to be correct.
//
// An error from either pass aborts the operation immediately; dst may
// already contain a partial, incomplete write in that case, and
// Convert does not attempt to clean it up (see spec §7).
func Convert(src Source, dst Sink, opts ConvertOptions) error {
	traceEnter(TraceIO, "Convert", opts.WholeFile)

	r := NewReader(src)
	list := newIndefList()

	parent := topBudget()
	if opts.WholeFile {
		n := src.Len()
		if n < 0 {
			return errAllocationFailure
		}
		parent = definiteBudget(n)
	}

	if _, _, err := collectIndef(r, list, parent); err != nil {
		traceExit(TraceIO, "Convert", err)
		return err
	}

	r.Rewind()
	list.reset()

	err := writeTap(r, dst, list, parent)
	traceExit(TraceIO, "Convert", err)
	return err
}
