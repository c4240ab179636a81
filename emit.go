package bertap

/*
emit.go implements the emission pass (writeTap), spec §4.3. It re-reads
the input from offset 0 — via the measurement pass's [Reader], rewound
by the driver — and writes the output using the [indefList] the measurement
pass filled in. Grounded on the teacher's writeTLV/encodeTLV (tlv.go):
tag octets copied verbatim, length octets recomputed with
[encodeLength]'s shortest-form policy, content copied byte-for-byte.
*/

// writeTap writes the item(s) described by remaining to w, consuming
// entries from list in the order the measurement pass produced them.
func writeTap(r *Reader, w Sink, list *indefList, remaining budget) error {
	traceEnter(TraceEmit, "writeTap", r.Offset(), remaining.kind)

	for {
		lengthOffset := int64(0)

		id, err := decodeIdentifier(r)
		if err != nil {
			return err
		}
		idLen := int64(len(id.raw))
		lengthOffset = r.Offset()

		ln, err := decodeLength(r)
		if err != nil {
			return err
		}
		lenLen := int64(len(ln.raw))

		if remaining.kind == budgetDefinite {
			remaining.remaining -= idLen + lenLen
		}

		switch {
		case id.isEOCTag() && ln.isEOCLength():
			if remaining.kind != budgetIndefinite {
				return atOffset(errUnexpectedEOC, r.Offset())
			}
			traceExit(TraceEmit, "writeTap", "eoc")
			return nil

		case ln.kind == lengthIndefinite:
			if !id.constructed {
				return atOffset(errPrimitiveIndefinite, r.Offset())
			}

			entry, ok := list.pop()
			if !ok || entry.inputOffset != lengthOffset || !entry.wasIndefinite {
				return atOffset(errListDesync, lengthOffset)
			}

			if _, err := w.Write(id.raw); err != nil {
				return err
			}
			encoded, err := encodeLength(entry.definiteSpan)
			if err != nil {
				return err
			}
			if _, err := w.Write(encoded); err != nil {
				return err
			}

			if err := writeTap(r, w, list, indefiniteBudget()); err != nil {
				return err
			}

			if remaining.kind == budgetDefinite {
				remaining.remaining -= entry.originalSpan
			}

		default:
			length := ln.value

			if entry, ok := list.peek(); ok && entry.inputOffset == lengthOffset && !entry.wasIndefinite {
				list.pop()

				if _, err := w.Write(id.raw); err != nil {
					return err
				}
				encoded, err := encodeLength(entry.definiteSpan)
				if err != nil {
					return err
				}
				if _, err := w.Write(encoded); err != nil {
					return err
				}

				if err := writeTap(r, w, list, definiteBudget(length)); err != nil {
					return err
				}
			} else {
				if _, err := w.Write(id.raw); err != nil {
					return err
				}
				if _, err := w.Write(ln.raw); err != nil {
					return err
				}

				if !id.constructed {
					content, err := r.ReadN(length)
					if err != nil {
						return err
					}
					traceHex("content", lengthOffset+lenLen, content)
					if _, err := w.Write(content); err != nil {
						return err
					}
				} else if err := writeTap(r, w, list, definiteBudget(length)); err != nil {
					return err
				}
			}

			if remaining.kind == budgetDefinite {
				remaining.remaining -= length
			}
		}

		switch remaining.kind {
		case budgetTop:
			traceExit(TraceEmit, "writeTap", "top-done")
			return nil
		case budgetDefinite:
			if remaining.remaining == 0 {
				traceExit(TraceEmit, "writeTap", "definite-done")
				return nil
			}
		case budgetIndefinite:
			// keep looping until the EOC branch above returns
		}
	}
}
