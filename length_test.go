package bertap

import (
	"errors"
	"testing"
)

func TestDecodeLength_shortForm(t *testing.T) {
	tests := []struct {
		in   byte
		want int64
	}{
		{0x00, 0},
		{0x01, 1},
		{0x7F, 127},
	}
	for _, tc := range tests {
		r := NewReader(NewByteSliceSource([]byte{tc.in}))
		h, err := decodeLength(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.kind != lengthShort {
			t.Errorf("kind = %v, want lengthShort", h.kind)
		}
		if h.value != tc.want {
			t.Errorf("value = %d, want %d", h.value, tc.want)
		}
	}
}

func TestDecodeLength_longForm(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int64
	}{
		{"128 (two octets)", []byte{0x81, 0x80}, 128},
		{"256 (three octets)", []byte{0x82, 0x01, 0x00}, 256},
		{"200", []byte{0x81, 0xC8}, 200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(NewByteSliceSource(tc.in))
			h, err := decodeLength(r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h.kind != lengthLong {
				t.Errorf("kind = %v, want lengthLong", h.kind)
			}
			if h.value != tc.want {
				t.Errorf("value = %d, want %d", h.value, tc.want)
			}
		})
	}
}

func TestDecodeLength_indefinite(t *testing.T) {
	r := NewReader(NewByteSliceSource([]byte{0x80}))
	h, err := decodeLength(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.kind != lengthIndefinite {
		t.Errorf("kind = %v, want lengthIndefinite", h.kind)
	}
	if h.isEOCLength() {
		t.Errorf("isEOCLength() = true for 0x80, want false")
	}
}

func TestDecodeLength_tooLarge(t *testing.T) {
	// n = 5 > 4 continuation octets.
	r := NewReader(NewByteSliceSource([]byte{0x85, 0x01, 0x02, 0x03, 0x04, 0x05}))
	_, err := decodeLength(r)
	if !errors.Is(err, errLengthTooLarge) {
		t.Fatalf("err = %v, want errLengthTooLarge", err)
	}
}

func TestDecodeLength_truncation(t *testing.T) {
	r := NewReader(NewByteSliceSource([]byte{0x82, 0x01}))
	_, err := decodeLength(r)
	if !errors.Is(err, errTruncation) {
		t.Fatalf("err = %v, want errTruncation", err)
	}
}

func TestEncodeLength_shortForm(t *testing.T) {
	for _, n := range []int64{0, 1, 126, 127} {
		out, err := encodeLength(n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(out) != 1 || int64(out[0]) != n {
			t.Errorf("n=%d: out = %v, want single byte %d", n, out, n)
		}
	}
}

func TestEncodeLength_longForm(t *testing.T) {
	tests := []struct {
		n    int64
		want []byte
	}{
		{128, []byte{0x81, 0x80}},
		{200, []byte{0x81, 0xC8}},
		{256, []byte{0x82, 0x01, 0x00}},
	}
	for _, tc := range tests {
		out, err := encodeLength(tc.n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", tc.n, err)
		}
		if string(out) != string(tc.want) {
			t.Errorf("n=%d: out = % X, want % X", tc.n, out, tc.want)
		}
	}
}

func TestEncodeLength_negative(t *testing.T) {
	if _, err := encodeLength(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestEncodeDecodeLength_roundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 127, 128, 255, 256, 65535, 65536, 1 << 24} {
		out, err := encodeLength(n)
		if err != nil {
			t.Fatalf("n=%d: encode error: %v", n, err)
		}
		r := NewReader(NewByteSliceSource(out))
		h, err := decodeLength(r)
		if err != nil {
			t.Fatalf("n=%d: decode error: %v", n, err)
		}
		if h.value != n {
			t.Errorf("n=%d: round-tripped to %d", n, h.value)
		}
	}
}
