package mtl

// ValueKind represents the kind of a custom data value.
type ValueKind int

const (
	// ValueString indicates a string value.
	ValueString ValueKind = iota
	// ValueNumber indicates a numeric value.
	ValueNumber
	// ValueBool indicates a boolean value.
	ValueBool
	// ValueBlob indicates an opaque byte blob.
	ValueBlob
)

// Value is a tagged custom data value attached to a material.
type Value struct {
	Str  string    `json:"str,omitempty" yaml:"str,omitempty"`   // String value
	Blob []byte    `json:"blob,omitempty" yaml:"blob,omitempty"` // Blob value
	Kind ValueKind `json:"kind" yaml:"kind"`                     // Value kind
	Num  float64   `json:"num,omitempty" yaml:"num,omitempty"`   // Number value
	Bool bool      `json:"bool,omitempty" yaml:"bool,omitempty"` // Boolean value
}

// StringValue creates a string Value.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// NumberValue creates a numeric Value.
func NumberValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// BoolValue creates a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// BlobValue creates an opaque blob Value. The bytes are copied.
func BlobValue(b []byte) Value {
	blob := make([]byte, len(b))
	copy(blob, b)
	return Value{Kind: ValueBlob, Blob: blob}
}

// clone returns an independent copy of the value.
func (v Value) clone() Value {
	out := v
	if v.Blob != nil {
		out.Blob = make([]byte, len(v.Blob))
		copy(out.Blob, v.Blob)
	}
	return out
}
