package gobwire

import "encoding/binary"

// DecodeUvarint decodes the unsigned variable-length integer at the
// front of buf. The first byte, read as a signed 8-bit quantity,
// gives the value directly when non-negative; otherwise its negation
// is the count of big-endian bytes that follow.
func DecodeUvarint(buf []byte) (uint64, []byte, error) {
	if len(buf) == 0 {
		return 0, nil, &TruncatedInputError{Need: 1, Have: 0, Msg: "uvarint length byte"}
	}
	b0 := buf[0]
	if b0 < 0x80 {
		return uint64(b0), buf[1:], nil
	}
	l := 256 - int(b0)
	if len(buf)-1 < l {
		return 0, nil, &TruncatedInputError{Need: l, Have: len(buf) - 1, Msg: "uvarint payload"}
	}
	var v uint64
	for _, b := range buf[1 : 1+l] {
		v = v<<8 | uint64(b)
	}
	return v, buf[1+l:], nil
}

// EncodeUvarint returns the minimal big-endian encoding of v, prefixed
// by the byte 256 minus its byte count, in the form DecodeUvarint
// reads. Values below 0x80 take a single byte.
func EncodeUvarint(v uint64) []byte {
	if v < 0x80 {
		return []byte{byte(v)}
	}
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	i := 0
	for i < 7 && tmp[i] == 0 {
		i++
	}
	l := 8 - i
	out := make([]byte, 0, l+1)
	out = append(out, byte(256-l))
	out = append(out, tmp[i:]...)
	return out
}

// DecodeVarint decodes a zig-zag encoded signed integer.
func DecodeVarint(buf []byte) (int64, []byte, error) {
	u, rest, err := DecodeUvarint(buf)
	if err != nil {
		return 0, nil, err
	}
	if u&1 != 0 {
		return ^int64(u >> 1), rest, nil
	}
	return int64(u >> 1), rest, nil
}

// EncodeVarint zig-zag encodes a signed integer and frames it with
// EncodeUvarint.
func EncodeVarint(n int64) []byte {
	var u uint64
	if n < 0 {
		u = uint64(^n)<<1 | 1
	} else {
		u = uint64(n) << 1
	}
	return EncodeUvarint(u)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
