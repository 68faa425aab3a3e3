package gobwire

// Encode serialises one of the seven supported primitive Go values
// (bool, any signed or unsigned integer type, float32/float64, []byte,
// string, complex64/complex128) as a single framed gob message: a
// segment whose body is signed_varint(tid) || 0x00 || primitive body.
// The leading zero is the field-delta terminator — non-struct
// top-level values are framed as if they were single-field structs, so
// they still carry one. Encoding of compound types (struct, array,
// slice, map) is out of scope.
func Encode(value any) ([]byte, error) {
	tid, body, err := encodePrimitive(value)
	if err != nil {
		return nil, err
	}
	segBody := make([]byte, 0, len(body)+2)
	segBody = append(segBody, EncodeVarint(int64(tid))...)
	segBody = append(segBody, 0x00)
	segBody = append(segBody, body...)

	seg := make([]byte, 0, len(segBody)+8)
	seg = append(seg, EncodeUvarint(uint64(len(segBody)))...)
	seg = append(seg, segBody...)
	return seg, nil
}

func encodePrimitive(value any) (tid int, body []byte, err error) {
	switch v := value.(type) {
	case bool:
		return tidBool, encodeBool(v), nil

	case int:
		return tidInt, encodeInt(int64(v)), nil
	case int8:
		return tidInt, encodeInt(int64(v)), nil
	case int16:
		return tidInt, encodeInt(int64(v)), nil
	case int32:
		return tidInt, encodeInt(int64(v)), nil
	case int64:
		return tidInt, encodeInt(v), nil

	case uint:
		return tidUint, encodeUint(uint64(v)), nil
	case uint8:
		return tidUint, encodeUint(uint64(v)), nil
	case uint16:
		return tidUint, encodeUint(uint64(v)), nil
	case uint32:
		return tidUint, encodeUint(uint64(v)), nil
	case uint64:
		return tidUint, encodeUint(v), nil

	case float32:
		return tidFloat, encodeFloat(float64(v)), nil
	case float64:
		return tidFloat, encodeFloat(v), nil

	case []byte:
		return tidByteSlice, encodeByteSlice(v), nil
	case string:
		return tidString, encodeByteSlice([]byte(v)), nil

	case complex64:
		return tidComplex, encodeComplex(complex128(v)), nil
	case complex128:
		return tidComplex, encodeComplex(v), nil

	default:
		return 0, nil, &InvalidEncodeArgumentError{Msg: "no wire mapping for this Go type"}
	}
}
