// Package codec implements the binary message format for PSAS-style flight
// telemetry. Every message on the wire is a frame: a fixed 12-byte header
// followed by a fixed-size body whose layout is defined per message type.
//
// # Frame Format
//
// The header is always big-endian:
//
//	[FourCC(4)][TimestampHi(2)][TimestampLo(4)][Length(2)]
//
// Fields:
//   - FourCC: four-byte type code selecting the body's schema
//   - TimestampHi/TimestampLo: a 48-bit nanosecond counter split across a
//     16-bit high word and a 32-bit low word
//   - Length: declared body size in bytes (not always trustworthy, see the
//     catalog package)
//
// The body is a packed sequence of fixed-width fields in the byte order
// declared by the message type. Each scalar field may carry a unit
// transform mapping the wire integer to an engineering-unit value:
//
//	native = wire*Scale + Bias
//
// Producers and consumers agree on the schema out of band; nothing about
// the layout is negotiated at runtime.
package codec
