package bertap

/*
identifier.go decodes and re-validates BER identifier (tag) octets, per
spec §4.1.1. Grounded on the teacher's parseTagIdentifier/parseClassIdentifier/
parseCompoundIdentifier (pkt.go), generalized from a Packet-backed
buffer into the counting [Reader] this package uses for both passes,
and cross-checked against andviro-pkcs7's readObject tag-parsing branch
and vocdoni-vocsign's berParser.readTag.
*/

// Class is the 2-bit ASN.1 class carried in bits 7-6 of the first
// identifier octet.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContext
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "UNIVERSAL"
	case ClassApplication:
		return "APPLICATION"
	case ClassContext:
		return "CONTEXT"
	case ClassPrivate:
		return "PRIVATE"
	}
	return "INVALID"
}

// identifierHeader is the decoded form of a BER identifier octet
// sequence (spec's TagLength.class/.constructed/.tag_number/.tag_bytes
// fields; length fields live in lengthHeader).
type identifierHeader struct {
	class       Class
	constructed bool
	tagNumber   int64
	raw         []byte // the 1-5 raw identifier octets, verbatim
}

// isEOCTag reports whether this identifier is the "00" tag octet half
// of an end-of-contents marker: universal class, primitive, tag 0.
func (h identifierHeader) isEOCTag() bool {
	return h.class == ClassUniversal && !h.constructed && h.tagNumber == 0 && len(h.raw) == 1 && h.raw[0] == 0x00
}

// decodeIdentifier reads one identifier octet sequence from r, per
// spec §4.1.1: first octet carries class (bits 7-6), the P/C bit (bit
// 5) and either the tag number directly (0-30) or 0x1F signalling
// high-tag-number form, continued in 7-bit big-endian groups with the
// high bit of each continuation octet marking "more follows". A fifth
// continuation octet without termination is tag_too_large.
func decodeIdentifier(r *Reader) (identifierHeader, error) {
	traceEnter(TraceCodec, "decodeIdentifier", r.Offset())

	first, err := r.ReadByte()
	if err != nil {
		return identifierHeader{}, atOffset(errTruncation, r.Offset())
	}

	h := identifierHeader{
		class:       Class(first >> 6),
		constructed: first&0x20 != 0,
		raw:         []byte{first},
	}

	lowBits := first & 0x1F
	if lowBits != 0x1F {
		h.tagNumber = int64(lowBits)
		traceExit(TraceCodec, "decodeIdentifier", h.tagNumber, "constructed="+bool2str(h.constructed))
		return h, nil
	}

	// High-tag-number (long) form: up to 4 continuation octets (28 bits).
	var tag int64
	for i := 0; i < 5; i++ {
		if i == 4 {
			return identifierHeader{}, atOffset(errTagTooLarge, r.Offset())
		}
		b, err := r.ReadByte()
		if err != nil {
			return identifierHeader{}, atOffset(errTruncation, r.Offset())
		}
		h.raw = append(h.raw, b)
		tag = (tag << 7) | int64(b&0x7F)
		if b&0x80 == 0 {
			h.tagNumber = tag
			traceExit(TraceCodec, "decodeIdentifier", h.tagNumber, "constructed="+bool2str(h.constructed))
			return h, nil
		}
	}

	return identifierHeader{}, atOffset(errTagTooLarge, r.Offset())
}
