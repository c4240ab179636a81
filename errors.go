package bertap

/*
errors.go contains the error catalog used throughout this package.
Every malformed-input error returned by the codec, measurement and
emission passes is one of the sentinels declared below, optionally
wrapped with [atOffset] to attach the absolute input position at which
it was detected. Errors from the [Sink] are returned unchanged.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
Sentinel errors corresponding 1:1 to the error kinds named in the
specification: truncation, tag_too_large, length_too_large,
primitive_indefinite, unexpected_eoc, length_overrun, list_desync and
allocation_failure.
*/
var (
	errTruncation         error = mkerr("bertap: truncated BER header or content")
	errTagTooLarge        error = mkerr("bertap: tag number requires more than 4 continuation octets")
	errLengthTooLarge     error = mkerr("bertap: length requires more than 4 length-value octets")
	errPrimitiveIndefinite error = mkerr("bertap: primitive encoding may not carry an indefinite length")
	errUnexpectedEOC      error = mkerr("bertap: end-of-contents marker outside an indefinite-length region")
	errLengthOverrun      error = mkerr("bertap: child content exceeds enclosing definite length")
	errListDesync         error = mkerr("bertap: emission offset does not match the next recorded indefinite entry")
	errAllocationFailure  error = mkerr("bertap: failed to allocate working storage for conversion")
)

var errCache sync.Map

/*
mkerrf builds (and caches) an error from the concatenation of parts,
mirroring the teacher's de-duplicating formatted-error constructor so
that repeated structural failures (e.g. many list_desync errors across
a large stream) do not each allocate a fresh string.
*/
func mkerrf(parts ...string) error {
	msg := ""
	for _, p := range parts {
		msg += p
	}
	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}

/*
offsetError wraps a sentinel error with the absolute input offset at
which it was detected. It implements Unwrap so callers may still test
against the underlying sentinel with errors.Is.
*/
type offsetError struct {
	off int64
	err error
}

func (e *offsetError) Error() string {
	return e.err.Error() + " (at offset " + itoa64(e.off) + ")"
}

func (e *offsetError) Unwrap() error { return e.err }

/*
atOffset wraps err, if non-nil, with the absolute byte offset off at
which the core detected the problem.
*/
func atOffset(err error, off int64) error {
	if err == nil {
		return nil
	}
	return &offsetError{off: off, err: err}
}
