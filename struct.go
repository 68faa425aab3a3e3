package gobwire

import "fmt"

// fieldSpec is one (name, type id) entry of a struct descriptor, in
// declaration order.
type fieldSpec struct {
	name string
	tid  int
}

// structDecoder decodes a struct body through the field-delta
// protocol: fields are visited in strictly increasing index order, any
// field omitted from the wire stays at its zero value, and a delta of
// zero ends the struct.
type structDecoder struct {
	name   string
	fields []fieldSpec
}

func (d structDecoder) zeroValue(reg *registry) Value {
	fields := make([]Field, len(d.fields))
	for i, f := range d.fields {
		var zv Value
		if fd, ok := reg.lookup(f.tid); ok {
			zv = fd.zeroValue(reg)
		}
		fields[i] = Field{Name: f.name, Value: zv}
	}
	return structValueOf(d.name, fields)
}

func (d structDecoder) decode(buf []byte, reg *registry) (Value, []byte, error) {
	result := d.zeroValue(reg)
	fields := result.structVal.Fields
	rest := buf
	f := -1
	for {
		delta, tail, err := DecodeUvarint(rest)
		if err != nil {
			return Value{}, nil, err
		}
		rest = tail
		if delta == 0 {
			break
		}
		f += int(delta)
		if f < 0 || f >= len(d.fields) {
			return Value{}, nil, &MalformedDescriptorError{
				Msg: fmt.Sprintf("field index %d out of range for struct %q with %d field(s)", f, d.name, len(d.fields)),
			}
		}
		spec := d.fields[f]
		fd, ok := reg.lookup(spec.tid)
		if !ok {
			return Value{}, nil, &UnknownTypeIDError{TID: spec.tid}
		}
		val, tail2, err := fd.decode(rest, reg)
		if err != nil {
			return Value{}, nil, err
		}
		rest = tail2
		fields[f] = Field{Name: spec.name, Value: val}
	}
	return result, rest, nil
}
