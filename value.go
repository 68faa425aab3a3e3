package gobwire

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies which of the eleven decoded shapes a Value holds
// (KindInvalid aside).
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindComplex
	KindBytes
	KindString
	KindStruct
	KindArray
	KindSlice
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Field is a named value inside a StructValue, in descriptor order.
type Field struct {
	Name  string
	Value Value
}

// StructValue is a record of field-wise values in descriptor order.
type StructValue struct {
	Name   string
	Fields []Field
}

// MapEntry is one key/value pair of a decoded Map, in wire order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is the heterogeneous result of decoding one gob value: a sum
// type over boolean, integer, float, byte sequence, text, complex,
// record, array, slice and mapping.
type Value struct {
	kind       Kind
	boolVal    bool
	intVal     int64
	uintVal    uint64
	floatVal   float64
	complexVal complex128
	bytesVal   []byte
	structVal  *StructValue
	listVal    []Value
	mapVal     []MapEntry
}

func boolValue(b bool) Value           { return Value{kind: KindBool, boolVal: b} }
func intValue(n int64) Value           { return Value{kind: KindInt, intVal: n} }
func uintValue(u uint64) Value         { return Value{kind: KindUint, uintVal: u} }
func floatValue(f float64) Value       { return Value{kind: KindFloat, floatVal: f} }
func complexValue(c complex128) Value  { return Value{kind: KindComplex, complexVal: c} }
func bytesValue(b []byte) Value        { return Value{kind: KindBytes, bytesVal: b} }
func stringValue(b []byte) Value       { return Value{kind: KindString, bytesVal: b} }
func arrayValue(elems []Value) Value   { return Value{kind: KindArray, listVal: elems} }
func sliceValue(elems []Value) Value   { return Value{kind: KindSlice, listVal: elems} }
func mapValueOf(entries []MapEntry) Value {
	return Value{kind: KindMap, mapVal: entries}
}

func structValueOf(name string, fields []Field) Value {
	return Value{kind: KindStruct, structVal: &StructValue{Name: name, Fields: fields}}
}

// Kind reports which shape v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload; zero value if v is not KindBool.
func (v Value) Bool() bool { return v.boolVal }

// Int returns the signed integer payload.
func (v Value) Int() int64 { return v.intVal }

// Uint returns the unsigned integer payload.
func (v Value) Uint() uint64 { return v.uintVal }

// Float returns the floating-point payload.
func (v Value) Float() float64 { return v.floatVal }

// Complex returns the complex payload.
func (v Value) Complex() complex128 { return v.complexVal }

// Bytes returns the raw byte payload of a KindBytes or KindString value.
func (v Value) Bytes() []byte { return v.bytesVal }

// Text validates the KindString payload as UTF-8 and returns it as a
// string, or an error if it is not valid UTF-8 — the format carries
// raw bytes with no charset, so this validation is a caller-side
// convenience, not part of the wire contract.
func (v Value) Text() (string, error) {
	if !utf8.Valid(v.bytesVal) {
		return "", fmt.Errorf("gobwire: string payload is not valid UTF-8")
	}
	return string(v.bytesVal), nil
}

// StructName returns the registered name of a struct value.
func (v Value) StructName() string {
	if v.structVal == nil {
		return ""
	}
	return v.structVal.Name
}

// Field looks up a struct field by name.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindStruct || v.structVal == nil {
		return Value{}, false
	}
	for _, f := range v.structVal.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Fields returns the ordered fields of a struct value.
func (v Value) Fields() []Field {
	if v.structVal == nil {
		return nil
	}
	return v.structVal.Fields
}

// Len returns the element/entry count of an array, slice or map value.
func (v Value) Len() int {
	switch v.kind {
	case KindArray, KindSlice:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Index returns the i'th element of an array or slice value.
func (v Value) Index(i int) Value { return v.listVal[i] }

// Elems returns the elements of an array or slice value.
func (v Value) Elems() []Value { return v.listVal }

// MapEntries returns the key/value pairs of a map value, in wire order.
func (v Value) MapEntries() []MapEntry { return v.mapVal }

// valuesEqual reports deep equality between two decoded values; used
// to test a wire-type sub-descriptor against its zero value and to
// test the field-delta idempotence property.
func valuesEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.boolVal == b.boolVal
	case KindInt:
		return a.intVal == b.intVal
	case KindUint:
		return a.uintVal == b.uintVal
	case KindFloat:
		return a.floatVal == b.floatVal
	case KindComplex:
		return a.complexVal == b.complexVal
	case KindBytes, KindString:
		return string(a.bytesVal) == string(b.bytesVal)
	case KindStruct:
		if a.structVal == nil || b.structVal == nil {
			return a.structVal == b.structVal
		}
		if len(a.structVal.Fields) != len(b.structVal.Fields) {
			return false
		}
		for i := range a.structVal.Fields {
			if a.structVal.Fields[i].Name != b.structVal.Fields[i].Name {
				return false
			}
			if !valuesEqual(a.structVal.Fields[i].Value, b.structVal.Fields[i].Value) {
				return false
			}
		}
		return true
	case KindArray, KindSlice:
		if len(a.listVal) != len(b.listVal) {
			return false
		}
		for i := range a.listVal {
			if !valuesEqual(a.listVal[i], b.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.mapVal) != len(b.mapVal) {
			return false
		}
		for i := range a.mapVal {
			if !valuesEqual(a.mapVal[i].Key, b.mapVal[i].Key) || !valuesEqual(a.mapVal[i].Value, b.mapVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders a compact, debugging-oriented representation of v —
// used by cmd/gobdump's human-readable output mode.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindUint:
		return strconv.FormatUint(v.uintVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindComplex:
		return fmt.Sprintf("(%g+%gi)", real(v.complexVal), imag(v.complexVal))
	case KindBytes:
		return fmt.Sprintf("%x", v.bytesVal)
	case KindString:
		return strconv.Quote(string(v.bytesVal))
	case KindStruct:
		var sb strings.Builder
		sb.WriteString(v.structVal.Name)
		sb.WriteByte('{')
		for i, f := range v.structVal.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name)
			sb.WriteByte(':')
			sb.WriteString(f.Value.String())
		}
		sb.WriteByte('}')
		return sb.String()
	case KindArray, KindSlice:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.listVal {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	case KindMap:
		var sb strings.Builder
		sb.WriteString("map[")
		for i, e := range v.mapVal {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Key.String())
			sb.WriteByte(':')
			sb.WriteString(e.Value.String())
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "<invalid>"
	}
}
