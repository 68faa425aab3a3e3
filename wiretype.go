package gobwire

import "fmt"

// resolveWireType inspects a decoded wire_type descriptor value and
// materialises the concrete compound decoder it describes. Exactly one
// of the four sub-fields must be non-default;
// "non-default" is tested by inequality against that sub-field's own
// zero value, so an all-zero sub-descriptor is treated as absent.
func resolveWireType(v Value, reg *registry) (decoder, error) {
	arrayT, _ := v.Field("ArrayT")
	sliceT, _ := v.Field("SliceT")
	structT, _ := v.Field("StructT")
	mapT, _ := v.Field("MapT")

	arrayZero := zeroValueFor(reg, tidArrayType)
	sliceZero := zeroValueFor(reg, tidSliceType)
	structZero := zeroValueFor(reg, tidStructType)
	mapZero := zeroValueFor(reg, tidMapType)

	present := 0
	chosen := ""
	if !valuesEqual(arrayT, arrayZero) {
		present++
		chosen = "array"
	}
	if !valuesEqual(sliceT, sliceZero) {
		present++
		chosen = "slice"
	}
	if !valuesEqual(structT, structZero) {
		present++
		chosen = "struct"
	}
	if !valuesEqual(mapT, mapZero) {
		present++
		chosen = "map"
	}
	if present != 1 {
		return nil, &MalformedDescriptorError{
			Msg: fmt.Sprintf("wire type descriptor has %d non-default sub-field(s), want exactly 1", present),
		}
	}

	switch chosen {
	case "array":
		elemV, _ := arrayT.Field("Elem")
		lenV, _ := arrayT.Field("Len")
		return arrayDecoder{elemTID: int(elemV.Int()), length: int(lenV.Int())}, nil
	case "slice":
		elemV, _ := sliceT.Field("Elem")
		return sliceDecoder{elemTID: int(elemV.Int())}, nil
	case "struct":
		name := structTypeName(structT)
		fieldsV, _ := structT.Field("Field")
		specs := make([]fieldSpec, 0, fieldsV.Len())
		for _, fv := range fieldsV.Elems() {
			fn, _ := fv.Field("Name")
			fid, _ := fv.Field("Id")
			specs = append(specs, fieldSpec{name: string(fn.Bytes()), tid: int(fid.Int())})
		}
		return structDecoder{name: name, fields: specs}, nil
	case "map":
		keyV, _ := mapT.Field("Key")
		elemV, _ := mapT.Field("Elem")
		return mapDecoder{keyTID: int(keyV.Int()), elemTID: int(elemV.Int())}, nil
	default:
		return nil, &MalformedDescriptorError{Msg: "cannot handle wire type"}
	}
}

func structTypeName(structT Value) string {
	ct, ok := structT.Field("CommonType")
	if !ok {
		return ""
	}
	nameV, ok := ct.Field("Name")
	if !ok {
		return ""
	}
	return string(nameV.Bytes())
}

func zeroValueFor(reg *registry, tid int) Value {
	d, ok := reg.lookup(tid)
	if !ok {
		return Value{}
	}
	return d.zeroValue(reg)
}
