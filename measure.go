package bertap

/*
measure.go implements the measurement pass (collectIndef), spec §4.2.
Grounded on the teacher's recursive TLV walk (pkt.go's findEOC walks a
single indefinite level; this generalizes that walk into a full
recursive descent that also sizes every definite-length constructed
child) and on andviro-pkcs7's readObject, which already computes
FullLen()/BodyLen() bottom-up for a fully-parsed tree — collectIndef
does the equivalent computation without materializing the tree, since
bertap only ever needs the two integers (original and definite span)
plus the list of rewrite sites.
*/

// budgetKind distinguishes the three parent_size descriptors from spec
// §4.2: a single top-level value, a definite-length region with a
// known remaining byte budget, or an indefinite-length region that
// runs until its own end-of-contents marker.
type budgetKind uint8

const (
	budgetTop budgetKind = iota
	budgetDefinite
	budgetIndefinite
)

type budget struct {
	kind      budgetKind
	remaining int64 // meaningful only when kind == budgetDefinite
}

func topBudget() budget             { return budget{kind: budgetTop} }
func definiteBudget(n int64) budget { return budget{kind: budgetDefinite, remaining: n} }
func indefiniteBudget() budget      { return budget{kind: budgetIndefinite} }

// collectIndef measures the item(s) described by parent starting at
// r's current offset, recording one [indefEntry] per indefinite (or
// indefinite-affected) constructed item into list. It returns the
// total original-input byte span consumed and the equivalent
// definite-form span, per spec §4.2's contract.
func collectIndef(r *Reader, list *indefList, parent budget) (originalSpan, definiteSpan int64, err error) {
	traceEnter(TraceMeasure, "collectIndef", r.Offset(), parent.kind)
	defer func() { traceExit(TraceMeasure, "collectIndef", originalSpan, definiteSpan, err) }()

	for {
		lengthOffsetCandidate := int64(0) // set once the identifier is decoded

		id, err := decodeIdentifier(r)
		if err != nil {
			return originalSpan, definiteSpan, err
		}
		idLen := int64(len(id.raw))
		lengthOffsetCandidate = r.Offset()

		ln, err := decodeLength(r)
		if err != nil {
			return originalSpan, definiteSpan, err
		}
		lenLen := int64(len(ln.raw))

		originalSpan += idLen + lenLen
		definiteSpan += idLen + lenLen
		if parent.kind == budgetDefinite {
			parent.remaining -= idLen + lenLen
			if !clampNonNegative(parent.remaining) {
				return originalSpan, definiteSpan, atOffset(errLengthOverrun, r.Offset())
			}
		}

		switch {
		case id.isEOCTag() && ln.isEOCLength():
			if parent.kind != budgetIndefinite {
				return originalSpan, definiteSpan, atOffset(errUnexpectedEOC, r.Offset())
			}
			definiteSpan -= 2 // the 00 00 is dropped from the rewritten form
			return originalSpan, definiteSpan, nil

		case ln.kind == lengthIndefinite:
			if !id.constructed {
				return originalSpan, definiteSpan, atOffset(errPrimitiveIndefinite, r.Offset())
			}

			idx := list.reserve(lengthOffsetCandidate, true)

			childOrig, childDef, err := collectIndef(r, list, indefiniteBudget())
			if err != nil {
				return originalSpan, definiteSpan, err
			}

			encLen, encErr := encodeLength(childDef)
			if encErr != nil {
				return originalSpan, definiteSpan, encErr
			}

			list.fill(idx, childOrig, childDef)

			originalSpan += childOrig
			definiteSpan += childDef + int64(len(encLen)) - 1

			if parent.kind == budgetDefinite {
				parent.remaining -= childOrig
				if !clampNonNegative(parent.remaining) {
					return originalSpan, definiteSpan, atOffset(errLengthOverrun, r.Offset())
				}
			}

		default: // definite length
			length := ln.value

			if !id.constructed {
				if _, err := r.ReadN(length); err != nil {
					return originalSpan, definiteSpan, err
				}
				originalSpan += length
				definiteSpan += length
				if parent.kind == budgetDefinite {
					parent.remaining -= length
					if !clampNonNegative(parent.remaining) {
						return originalSpan, definiteSpan, atOffset(errLengthOverrun, r.Offset())
					}
				}
			} else {
				idx := list.reserve(lengthOffsetCandidate, false)

				childOrig, childDef, err := collectIndef(r, list, definiteBudget(length))
				if err != nil {
					return originalSpan, definiteSpan, err
				}
				if childOrig != length {
					return originalSpan, definiteSpan, atOffset(errLengthOverrun, r.Offset())
				}

				if childOrig != childDef {
					// Open Question (spec §9), resolved as option (b):
					// an indefinite descendant changed the size of this
					// definite parent's content, so the parent's own
					// length must also be rewritten on emission. The
					// re-encoded length may differ in width from the
					// original length octets.
					encLen, encErr := encodeLength(childDef)
					if encErr != nil {
						return originalSpan, definiteSpan, encErr
					}
					list.fill(idx, childOrig, childDef)
					definiteSpan += int64(len(encLen)) - lenLen
				} else {
					list.discard(idx)
				}

				originalSpan += childOrig
				definiteSpan += childDef
				if parent.kind == budgetDefinite {
					parent.remaining -= childOrig
					if !clampNonNegative(parent.remaining) {
						return originalSpan, definiteSpan, atOffset(errLengthOverrun, r.Offset())
					}
				}
			}
		}

		switch parent.kind {
		case budgetTop:
			return originalSpan, definiteSpan, nil
		case budgetDefinite:
			if parent.remaining == 0 {
				return originalSpan, definiteSpan, nil
			}
		case budgetIndefinite:
			// keep looping until the EOC branch above returns
		}
	}
}
