package gobwire

import (
	"math"
	"testing"
)

func TestDecodeFloatScenario(t *testing.T) {
	// the primitive body alone (no tid/terminator) decoding to 1.25.
	f, rest, err := decodeFloat([]byte{0xFE, 0xF4, 0x3F})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 1.25 {
		t.Errorf("got %v, want 1.25", f)
	}
	if len(rest) != 0 {
		t.Errorf("leftover bytes: %x", rest)
	}
}

func TestEncodeFloatZero(t *testing.T) {
	// encoding 0.0 collapses to a single zero byte: every mantissa and
	// exponent bit is zero, so the byte-reversed form is too.
	got := encodeFloat(0.0)
	if len(got) != 1 || got[0] != 0x00 {
		t.Errorf("encodeFloat(0.0) = %x, want [00]", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 1.25, -2, 3.14159265358979, math.Inf(1), math.Inf(-1)}
	for _, f := range cases {
		enc := encodeFloat(f)
		got, rest, err := decodeFloat(enc)
		if err != nil {
			t.Fatalf("decode(encode(%v)): %v", f, err)
		}
		if got != f {
			t.Errorf("round trip %v: got %v", f, got)
		}
		if len(rest) != 0 {
			t.Errorf("round trip %v: leftover bytes %x", f, rest)
		}
	}
}

func TestFloatRoundTripNaN(t *testing.T) {
	enc := encodeFloat(math.NaN())
	got, _, err := decodeFloat(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}

func TestDecodeBool(t *testing.T) {
	b, _, err := decodeBool([]byte{0x01}, false)
	if err != nil || !b {
		t.Errorf("decode(1) = %v, %v, want true, nil", b, err)
	}
	b, _, err = decodeBool([]byte{0x00}, false)
	if err != nil || b {
		t.Errorf("decode(0) = %v, %v, want false, nil", b, err)
	}
	// open question: non-1 non-0 is silently false when not strict.
	b, _, err = decodeBool([]byte{0x02}, false)
	if err != nil || b {
		t.Errorf("decode(2) non-strict = %v, %v, want false, nil", b, err)
	}
	if _, _, err = decodeBool([]byte{0x02}, true); !IsMalformedDescriptor(err) {
		t.Errorf("decode(2) strict = %v, want MalformedDescriptorError", err)
	}
}

func TestByteSliceAndStringRoundTrip(t *testing.T) {
	enc := encodeByteSlice([]byte("hello"))
	got, rest, err := decodeByteSlice(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want hello", got)
	}
	if len(rest) != 0 {
		t.Errorf("leftover bytes: %x", rest)
	}
}

func TestDecodeStringScenario(t *testing.T) {
	// the primitive body alone (count-prefixed raw bytes) for "hello".
	got, rest, err := decodeByteSlice([]byte{0x05, 0x68, 0x65, 0x6C, 0x6C, 0x6F})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want hello", got)
	}
	if len(rest) != 0 {
		t.Errorf("leftover bytes: %x", rest)
	}
}

func TestComplexRoundTrip(t *testing.T) {
	c := complex(1.25, -2.5)
	enc := encodeComplex(c)
	got, rest, err := decodeComplex(enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != c {
		t.Errorf("got %v, want %v", got, c)
	}
	if len(rest) != 0 {
		t.Errorf("leftover bytes: %x", rest)
	}
}
