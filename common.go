package bertap

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa    func(int) string   = strconv.Itoa
	itoa64  func(int64) string = func(i int64) string { return strconv.FormatInt(i, 10) }
	hexstr  func([]byte) string = hex.EncodeToString
	join    func([]string, string) string = strings.Join
	newStrBuilder func() strings.Builder = func() strings.Builder { return strings.Builder{} }
)

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
byteWidth returns the minimal number of big-endian bytes needed to
hold the nonnegative value v (1 for zero). It is generic over
[Integer]; encodeLength calls it with int64 length values.
*/
func byteWidth[T Integer](v T) int {
	n := 0
	for v > 0 {
		n++
		v >>= 8
	}
	if n == 0 {
		n = 1
	}
	return n
}

/*
clampNonNegative reports whether v is still non-negative, which the
measurement pass uses to detect a DEFINITE budget overrun (spec error
kind length_overrun) without repeating the comparison at every call
site.
*/
func clampNonNegative[T Integer](v T) bool { return v >= 0 }
