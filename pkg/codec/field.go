package codec

import "encoding/binary"

// WireType is the packed representation of a single field.
type WireType int

const (
	Uint8 WireType = iota
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
	// Bytes is an opaque fixed-size blob (raw protocol words, version
	// strings). Blobs carry no unit transform and are not round-tripped:
	// they encode as zeros and are omitted from decoded records.
	Bytes
)

var wireWidths = [...]int{
	Uint8: 1, Int8: 1,
	Uint16: 2, Int16: 2,
	Uint32: 4, Int32: 4,
	Uint64: 8, Int64: 8,
	Float32: 4, Float64: 8,
	Bytes: 0, // width comes from Field.Size
}

var cTypes = [...]string{
	Uint8: "uint8_t", Int8: "int8_t",
	Uint16: "uint16_t", Int16: "int16_t",
	Uint32: "uint32_t", Int32: "int32_t",
	Uint64: "uint64_t", Int64: "int64_t",
	Float32: "float", Float64: "double",
	Bytes: "char",
}

// Width returns the packed size in bytes, or 0 for Bytes whose size lives on
// the field.
func (t WireType) Width() int { return wireWidths[t] }

// CType returns the equivalent C type name for generated typedefs.
func (t WireType) CType() string { return cTypes[t] }

// Field is one member of a message body.
type Field struct {
	Name  string
	Type  WireType
	Size  int // byte count for Bytes fields, ignored otherwise
	Units Units
}

// Width returns the packed size of this field in bytes.
func (f Field) Width() int {
	if f.Type == Bytes {
		return f.Size
	}
	return f.Type.Width()
}

// Layout is the binary shape of one message body: an ordered field list and
// a byte order, with the total width precomputed. Layouts are built once at
// catalog construction and never mutated, so unsynchronized concurrent reads
// are safe.
type Layout struct {
	Order  binary.ByteOrder
	Fields []Field
	size   int
}

// NewLayout precomputes the body width for a field list.
func NewLayout(order binary.ByteOrder, fields ...Field) *Layout {
	l := &Layout{Order: order, Fields: fields}
	for _, f := range fields {
		l.size += f.Width()
	}
	return l
}

// Size returns the total body width in bytes.
func (l *Layout) Size() int { return l.size }
