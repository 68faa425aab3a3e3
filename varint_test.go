package gobwire

import (
	"bytes"
	"testing"
)

func TestDecodeUvarintSmall(t *testing.T) {
	v, rest, err := DecodeUvarint([]byte{0x05, 0xAA})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Errorf("got %d, want 5", v)
	}
	if !bytes.Equal(rest, []byte{0xAA}) {
		t.Errorf("rest = %x, want AA", rest)
	}
}

func TestDecodeUvarintMultiByte(t *testing.T) {
	// 256 needs two bytes: length prefix FE (2 bytes follow), then 01 00.
	v, rest, err := DecodeUvarint([]byte{0xFE, 0x01, 0x00, 0x99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 256 {
		t.Errorf("got %d, want 256", v)
	}
	if !bytes.Equal(rest, []byte{0x99}) {
		t.Errorf("rest = %x, want 99", rest)
	}
}

func TestDecodeUvarintTruncated(t *testing.T) {
	if _, _, err := DecodeUvarint(nil); !IsTruncatedInput(err) {
		t.Fatalf("empty buffer: got %v, want TruncatedInputError", err)
	}
	if _, _, err := DecodeUvarint([]byte{0xFE, 0x01}); !IsTruncatedInput(err) {
		t.Fatalf("short buffer: got %v, want TruncatedInputError", err)
	}
}

func TestEncodeUvarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 255, 256, 65535, 1 << 32, ^uint64(0)}
	for _, n := range cases {
		enc := EncodeUvarint(n)
		got, rest, err := DecodeUvarint(enc)
		if err != nil {
			t.Fatalf("decode(encode(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
		if len(rest) != 0 {
			t.Errorf("round trip %d: leftover bytes %x", n, rest)
		}
	}
}

func TestEncodeUvarintMinimality(t *testing.T) {
	if len(EncodeUvarint(127)) != 1 {
		t.Errorf("127 should encode to 1 byte")
	}
	enc := EncodeUvarint(256)
	if enc[0] != 0xFE {
		t.Errorf("256 should have length prefix FE, got %x", enc[0])
	}
	if len(enc) != 3 {
		t.Errorf("256 should encode to 3 bytes total, got %d", len(enc))
	}
}

func TestSignedVarint(t *testing.T) {
	// -3 zig-zags to unsigned 5, a single payload byte: here we test the
	// varint alone, without the surrounding segment framing.
	n, rest, err := DecodeVarint([]byte{0x05})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != -3 {
		t.Errorf("got %d, want -3", n)
	}
	if len(rest) != 0 {
		t.Errorf("leftover bytes: %x", rest)
	}
}

func TestSignedVarintRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 2, -2, 127, -128, 1 << 40, -(1 << 40)}
	for _, n := range cases {
		enc := EncodeVarint(n)
		got, rest, err := DecodeVarint(enc)
		if err != nil {
			t.Fatalf("decode(encode(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
		if len(rest) != 0 {
			t.Errorf("round trip %d: leftover bytes %x", n, rest)
		}
	}
}
