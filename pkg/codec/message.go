package codec

import "math"

// MessageType binds a four-byte code to the fixed layout of its body.
// FixedLength marks types whose producers emit an unreliable length field in
// the header; the frame decoder substitutes Size() for the declared length.
type MessageType struct {
	FourCC      FourCC
	Name        string
	Layout      *Layout
	FixedLength bool
}

// Size returns the body width in bytes.
func (mt *MessageType) Size() int { return mt.Layout.Size() }

// Record is one decoded message: the type code and timestamp from the
// header plus the body's fields in engineering units. Ownership passes to
// the caller on decode; the codec retains no reference.
type Record struct {
	FourCC    FourCC             `json:"fourcc"`
	Timestamp uint64             `json:"timestamp"`
	Fields    map[string]float64 `json:"fields"`
}

// Encode packs engineering-unit values into a message body. Fields missing
// from data encode as the wire representation of native zero; that is a
// deliberate default so partial telemetry records still frame. Keys not in
// the layout are ignored. Computed wire values for integer types truncate
// toward zero, never round: existing logs were written that way and
// bit-compatibility matters more than accuracy.
func (mt *MessageType) Encode(data map[string]float64) []byte {
	l := mt.Layout
	buf := make([]byte, l.Size())
	off := 0
	for _, f := range l.Fields {
		w := f.Width()
		if f.Type == Bytes {
			off += w
			continue
		}
		wire := 0.0
		if v, ok := data[f.Name]; ok {
			wire = f.Units.ToWire(v)
		}
		packWire(l, buf[off:off+w], f.Type, wire)
		off += w
	}
	return buf
}

// Decode unpacks a message body into engineering-unit values. The body must
// be exactly Size() bytes; both short and long inputs fail, there is no
// size tolerance. Bytes fields are omitted from the result.
func (mt *MessageType) Decode(body []byte) (map[string]float64, error) {
	l := mt.Layout
	if len(body) != l.Size() {
		return nil, &SizeError{Expected: l.Size(), Got: len(body)}
	}
	values := make(map[string]float64, len(l.Fields))
	off := 0
	for _, f := range l.Fields {
		w := f.Width()
		if f.Type == Bytes {
			off += w
			continue
		}
		wire := unpackWire(l, body[off:off+w], f.Type)
		values[f.Name] = f.Units.ToNative(wire)
		off += w
	}
	return values, nil
}

func packWire(l *Layout, dst []byte, t WireType, wire float64) {
	switch t {
	case Uint8:
		dst[0] = uint8(clampUint(wire, 8))
	case Int8:
		dst[0] = uint8(clampInt(wire, 8))
	case Uint16:
		l.Order.PutUint16(dst, uint16(clampUint(wire, 16)))
	case Int16:
		l.Order.PutUint16(dst, uint16(clampInt(wire, 16)))
	case Uint32:
		l.Order.PutUint32(dst, uint32(clampUint(wire, 32)))
	case Int32:
		l.Order.PutUint32(dst, uint32(clampInt(wire, 32)))
	case Uint64:
		l.Order.PutUint64(dst, clampUint(wire, 64))
	case Int64:
		l.Order.PutUint64(dst, uint64(clampInt(wire, 64)))
	case Float32:
		l.Order.PutUint32(dst, math.Float32bits(float32(wire)))
	case Float64:
		l.Order.PutUint64(dst, math.Float64bits(wire))
	}
}

// clampUint truncates toward zero and saturates at the type's range. Go
// leaves float-to-integer conversion undefined when the value overflows,
// and a garbage input must still produce a deterministic frame. NaN packs
// as zero.
func clampUint(wire float64, bits uint) uint64 {
	if math.IsNaN(wire) || wire <= 0 {
		return 0
	}
	max := uint64(math.MaxUint64) >> (64 - bits)
	if wire >= float64(max) {
		return max
	}
	return uint64(wire)
}

func clampInt(wire float64, bits uint) int64 {
	if math.IsNaN(wire) {
		return 0
	}
	max := int64(math.MaxInt64) >> (64 - bits)
	min := -max - 1
	if wire >= float64(max) {
		return max
	}
	if wire <= float64(min) {
		return min
	}
	return int64(wire)
}

func unpackWire(l *Layout, src []byte, t WireType) float64 {
	switch t {
	case Uint8:
		return float64(src[0])
	case Int8:
		return float64(int8(src[0]))
	case Uint16:
		return float64(l.Order.Uint16(src))
	case Int16:
		return float64(int16(l.Order.Uint16(src)))
	case Uint32:
		return float64(l.Order.Uint32(src))
	case Int32:
		return float64(int32(l.Order.Uint32(src)))
	case Uint64:
		return float64(l.Order.Uint64(src))
	case Int64:
		return float64(int64(l.Order.Uint64(src)))
	case Float32:
		return float64(math.Float32frombits(l.Order.Uint32(src)))
	case Float64:
		return math.Float64frombits(l.Order.Uint64(src))
	}
	return 0
}
