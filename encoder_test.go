package gobwire

import (
	"bytes"
	"testing"
)

func TestEncodeScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []byte
	}{
		{"true", true, []byte{0x03, 0x02, 0x00, 0x01}},
		{"256", 256, []byte{0x05, 0x04, 0x00, 0xFE, 0x02, 0x00}},
		{"0.0", 0.0, []byte{0x03, 0x08, 0x00, 0x00}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Encode(c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, c.want) {
				t.Errorf("Encode(%v) = % X, want % X", c.in, got, c.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []any{
		true, false,
		0, 1, -1, 256, -256,
		uint(0), uint(256),
		1.25, -2.0, 0.0,
		[]byte("raw bytes"),
		"a string",
		complex(1.25, -2.5),
	}
	for _, in := range cases {
		enc, err := Encode(in)
		if err != nil {
			t.Fatalf("Encode(%v): %v", in, err)
		}
		v, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", in, err)
		}
		switch want := in.(type) {
		case bool:
			if v.Kind() != KindBool || v.Bool() != want {
				t.Errorf("%v: got %v", in, v)
			}
		case int:
			if v.Kind() != KindInt || v.Int() != int64(want) {
				t.Errorf("%v: got %v", in, v)
			}
		case uint:
			if v.Kind() != KindUint || v.Uint() != uint64(want) {
				t.Errorf("%v: got %v", in, v)
			}
		case float64:
			if v.Kind() != KindFloat || v.Float() != want {
				t.Errorf("%v: got %v", in, v)
			}
		case []byte:
			if v.Kind() != KindBytes || string(v.Bytes()) != string(want) {
				t.Errorf("%v: got %v", in, v)
			}
		case string:
			if v.Kind() != KindString || string(v.Bytes()) != want {
				t.Errorf("%v: got %v", in, v)
			}
		case complex128:
			if v.Kind() != KindComplex || v.Complex() != want {
				t.Errorf("%v: got %v", in, v)
			}
		}
	}
}

func TestEncodeUnsupportedType(t *testing.T) {
	type custom struct{ X int }
	if _, err := Encode(custom{X: 1}); !IsInvalidEncodeArgument(err) {
		t.Errorf("got %v, want InvalidEncodeArgumentError", err)
	}
}
