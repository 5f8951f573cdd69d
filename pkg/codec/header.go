package codec

import "encoding/binary"

// HeaderSize is the fixed frame header width in bytes.
const HeaderSize = 12

// TimestampMask bounds the 48-bit nanosecond counter carried in the header.
const TimestampMask = (uint64(1) << 48) - 1

// Header is the decoded frame header. Timestamp is the 48-bit counter
// reassembled from its split hi/lo wire fields; Length is the declared body
// size, which is not validated here (and for some types is not trustworthy,
// see the catalog package).
type Header struct {
	FourCC    FourCC
	Timestamp uint64
	Length    uint16
}

// EncodeHeader packs a frame header. The timestamp is masked to 48 bits and
// split into a 16-bit high word and 32-bit low word; the source clock is a
// 48-bit nanosecond counter and must not be confused with a 32-bit value.
// The type code is not checked against any registry: headers may be emitted
// for unregistered or test types.
func EncodeHeader(fc FourCC, timestamp uint64, length uint16) []byte {
	timestamp &= TimestampMask
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], fc[:])
	binary.BigEndian.PutUint16(buf[4:6], uint16(timestamp>>32))
	binary.BigEndian.PutUint32(buf[6:10], uint32(timestamp))
	binary.BigEndian.PutUint16(buf[10:12], length)
	return buf
}

// DecodeHeader unpacks a frame header from exactly HeaderSize bytes. An
// unrecognized type code decodes successfully; recognition happens one
// layer up.
func DecodeHeader(raw []byte) (Header, error) {
	if len(raw) != HeaderSize {
		return Header{}, &SizeError{Expected: HeaderSize, Got: len(raw)}
	}
	var h Header
	copy(h.FourCC[:], raw[0:4])
	hi := binary.BigEndian.Uint16(raw[4:6])
	lo := binary.BigEndian.Uint32(raw[6:10])
	h.Timestamp = uint64(hi)<<32 | uint64(lo)
	h.Length = binary.BigEndian.Uint16(raw[10:12])
	return h, nil
}
