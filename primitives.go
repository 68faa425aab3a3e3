package gobwire

import (
	"encoding/binary"
	"math"
)

// encodeBool/decodeBool: Bool is carried as Uint(0) or Uint(1).
func decodeBool(buf []byte, strict bool) (bool, []byte, error) {
	u, rest, err := DecodeUvarint(buf)
	if err != nil {
		return false, nil, err
	}
	if u > 1 && strict {
		return false, nil, &MalformedDescriptorError{Msg: "bool encoded as uint >= 2"}
	}
	return u == 1, rest, nil
}

func encodeBool(b bool) []byte {
	if b {
		return EncodeUvarint(1)
	}
	return EncodeUvarint(0)
}

func decodeUint(buf []byte) (uint64, []byte, error) {
	return DecodeUvarint(buf)
}

func encodeUint(v uint64) []byte {
	return EncodeUvarint(v)
}

func decodeInt(buf []byte) (int64, []byte, error) {
	return DecodeVarint(buf)
}

func encodeInt(v int64) []byte {
	return EncodeVarint(v)
}

// decodeFloat/encodeFloat reverse the 8 big-endian bytes of the
// float64 bit pattern before varint-framing them, so that floats whose
// mantissa has many trailing zero bits (0.0, 1.0, -2.0, ...) end up
// with many leading zero bytes and encode compactly.
func decodeFloat(buf []byte) (float64, []byte, error) {
	u, rest, err := DecodeUvarint(buf)
	if err != nil {
		return 0, nil, err
	}
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], u)
	reverseBytes(raw[:])
	bits := binary.BigEndian.Uint64(raw[:])
	return math.Float64frombits(bits), rest, nil
}

func encodeFloat(f float64) []byte {
	bits := math.Float64bits(f)
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], bits)
	reverseBytes(raw[:])
	v := binary.BigEndian.Uint64(raw[:])
	return EncodeUvarint(v)
}

// decodeByteSlice/encodeByteSlice: a varint count followed by that
// many raw bytes. String uses the identical wire shape; the Kind tag
// is the only distinction.
func decodeByteSlice(buf []byte) ([]byte, []byte, error) {
	n, rest, err := DecodeUvarint(buf)
	if err != nil {
		return nil, nil, err
	}
	if uint64(len(rest)) < n {
		return nil, nil, &TruncatedInputError{Need: int(n), Have: len(rest), Msg: "byte sequence body"}
	}
	out := make([]byte, n)
	copy(out, rest[:n])
	return out, rest[n:], nil
}

func encodeByteSlice(b []byte) []byte {
	out := EncodeUvarint(uint64(len(b)))
	return append(out, b...)
}

func decodeComplex(buf []byte) (complex128, []byte, error) {
	re, rest, err := decodeFloat(buf)
	if err != nil {
		return 0, nil, err
	}
	im, rest2, err := decodeFloat(rest)
	if err != nil {
		return 0, nil, err
	}
	return complex(re, im), rest2, nil
}

func encodeComplex(c complex128) []byte {
	out := encodeFloat(real(c))
	return append(out, encodeFloat(imag(c))...)
}
