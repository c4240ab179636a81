package bertap

/*
indef.go implements the IndefiniteEntry/IndefiniteList data model from
spec §3: a list of bookkeeping records, one per indefinite (or
indefinite-affected) constructed item, produced in traversal order by
the measurement pass and consumed in the same order by the emission
pass. Per the design note in spec §9, this is a growable slice with an
explicit read cursor rather than a linked list — no random access is
ever required, only append during measurement and sequential pop
during emission.
*/

// indefEntry records one constructed item whose header must be
// rewritten: either because it was itself encoded with an indefinite
// length, or — per the Open Question resolution in spec §9 — because
// it has a definite length but one of its descendants is indefinite
// and changed size when rewritten, so this entry's own length no
// longer matches its content.
type indefEntry struct {
	// inputOffset is the absolute byte offset, in the original input,
	// of this item's length octet (one past its tag octets).
	inputOffset int64

	// originalSpan is the number of bytes, in the input, occupied by
	// this item's content — including the trailing 00 00 if the item
	// was indefinite, or exactly the declared length if it was a
	// definite parent being rewritten only because of an indefinite
	// descendant.
	originalSpan int64

	// definiteSpan is the number of content bytes this item will
	// occupy once every indefinite descendant has been converted to
	// definite form. It is what replaces the original length value.
	definiteSpan int64

	// wasIndefinite distinguishes a genuinely indefinite item (whose
	// 0x80 length octet must become a definite one, and whose trailing
	// 00 00 must be dropped) from an "augmented" definite parent (whose
	// length octets are simply re-encoded in place; the resolution for
	// spec §9's Open Question).
	wasIndefinite bool
}

// indefList is the ordered sequence of [indefEntry] shared between the
// measurement and emission passes.
type indefList struct {
	entries []indefEntry
	next    int // emission's read cursor
}

func newIndefList() *indefList { return &indefList{} }

// reserve records the position of an entry at the moment its length
// octet is encountered — before the measurement pass recurses into its
// content — so the list stays ordered pre-order (the order the
// emission pass will re-encounter the corresponding length octets)
// even though the entry's spans are only known after the recursive
// call returns. Call [indefList.fill] or [indefList.discard] once the
// child spans are known.
func (l *indefList) reserve(offset int64, wasIndefinite bool) int {
	idx := len(l.entries)
	l.entries = append(l.entries, indefEntry{inputOffset: offset, wasIndefinite: wasIndefinite})
	return idx
}

// fill records the final spans for a previously reserved entry.
func (l *indefList) fill(idx int, originalSpan, definiteSpan int64) {
	l.entries[idx].originalSpan = originalSpan
	l.entries[idx].definiteSpan = definiteSpan
}

// discard removes a reserved entry that turned out not to need
// rewriting (a definite-length parent whose content size did not change),
// preserving the order of every entry reserved after it. The indices
// that reserve returned for those later entries each shift down by
// one, so they must already be filled.
func (l *indefList) discard(idx int) {
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
}

// len reports how many entries remain unconsumed.
func (l *indefList) len() int { return len(l.entries) - l.next }

// peek returns the next unconsumed entry without removing it.
func (l *indefList) peek() (indefEntry, bool) {
	if l.next >= len(l.entries) {
		return indefEntry{}, false
	}
	return l.entries[l.next], true
}

// pop removes and returns the next unconsumed entry.
func (l *indefList) pop() (indefEntry, bool) {
	e, ok := l.peek()
	if ok {
		l.next++
	}
	return e, ok
}

// reset rewinds the read cursor to the beginning. The driver calls it
// between the measurement and emission passes, so that emission
// starts draining the list from its first entry.
func (l *indefList) reset() { l.next = 0 }
