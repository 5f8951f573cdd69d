// Package stream extracts telemetry frames from byte streams. The frame
// decoder is a pure function over a byte window; the Reader drives it
// against a refillable buffer fed by any chunked byte provider (log file,
// datagram socket, in-memory buffer).
package stream

import (
	"errors"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

// ErrNeedMore is a control signal, not a failure: the window does not yet
// hold one complete frame. Refill and retry from the same offset.
var ErrNeedMore = errors.New("need more data")

// Decode attempts to extract exactly one frame from the front of buf and
// returns the number of bytes consumed along with the decoded record.
//
// Decode never mutates or retains buf and is idempotent over a growing
// prefix, so it is safe to call repeatedly against a buffer that only
// grows between calls.
//
//   - If buf cannot hold a full frame yet, it returns ErrNeedMore with n=0.
//   - An unknown type code is not an error: its declared length is used as
//     an opaque skip and the record carries an empty field map, which keeps
//     the stream in sync against message types from the future.
//   - Types flagged FixedLength frame with the catalogue body size; the
//     header's declared length for those producers is garbage.
//   - A body that disagrees with the catalogue size returns a *codec.SizeError
//     with n set to the bad frame's extent so the caller can resynchronize.
func Decode(reg *catalog.Registry, buf []byte) (n int, rec *codec.Record, err error) {
	if len(buf) < codec.HeaderSize {
		return 0, nil, ErrNeedMore
	}
	hdr, err := codec.DecodeHeader(buf[:codec.HeaderSize])
	if err != nil {
		return 0, nil, err
	}

	mt, known := reg.Lookup(hdr.FourCC)
	length := int(hdr.Length)
	if known && mt.FixedLength {
		length = mt.Size()
	}

	total := codec.HeaderSize + length
	if len(buf) < total {
		return 0, nil, ErrNeedMore
	}

	rec = &codec.Record{
		FourCC:    hdr.FourCC,
		Timestamp: hdr.Timestamp,
		Fields:    map[string]float64{},
	}
	if known {
		fields, err := mt.Decode(buf[codec.HeaderSize:total])
		if err != nil {
			return total, nil, err
		}
		rec.Fields = fields
	}
	return total, rec, nil
}
