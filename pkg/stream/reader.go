package stream

import (
	"errors"
	"io"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

// DefaultChunkSize is how much a Reader asks its source for per refill.
const DefaultChunkSize = 1 << 20

// ChunkSource supplies bytes to a Reader. ReadChunk returns up to max bytes;
// an empty chunk with a nil error means "nothing yet, try again" (a datagram
// receive that timed out), and io.EOF means the source is exhausted. Any
// blocking or timeout behavior belongs to the provider, never to the Reader.
type ChunkSource interface {
	ReadChunk(max int) ([]byte, error)
}

// Reader produces a lazy, finite sequence of decoded records from a
// ChunkSource. It owns a single growable buffer and must be driven by
// exactly one consumer; share nothing, or synchronize externally.
//
// Iterate in the usual scanner shape:
//
//	for r.Next() {
//		rec := r.Record()
//		...
//	}
//	if err := r.Err(); err != nil { ... }
type Reader struct {
	reg       *catalog.Registry
	src       ChunkSource
	chunkSize int
	buf       []byte
	rec       *codec.Record
	err       error
	eof       bool
	resyncs   int
	bytesRead int64
}

// ReaderConfig tunes a Reader. The zero value gives DefaultChunkSize.
type ReaderConfig struct {
	ChunkSize int
}

// NewReader creates a Reader over src dispatching against reg.
func NewReader(reg *catalog.Registry, src ChunkSource, config ReaderConfig) *Reader {
	size := config.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &Reader{reg: reg, src: src, chunkSize: size}
}

// Next advances to the next record. It returns false when the source is
// exhausted or a source error occurred; check Err afterwards.
func (r *Reader) Next() bool {
	for {
		if len(r.buf) >= codec.HeaderSize {
			n, rec, err := Decode(r.reg, r.buf)
			switch {
			case err == nil:
				r.buf = r.buf[n:]
				r.rec = rec
				return true
			case errors.Is(err, ErrNeedMore):
				// refill below
			case errors.Is(err, codec.ErrSizeMismatch):
				r.resync(n)
				continue
			default:
				r.err = err
				return false
			}
		}
		if r.eof {
			// A trailing partial frame is dropped; restarting means
			// reopening the source.
			return false
		}
		if !r.refill() {
			return false
		}
	}
}

// resync recovers from a frame whose body disagrees with the catalogue.
// When the bad frame's extent is known the whole window is skipped;
// otherwise one byte is discarded and decoding retried. This is advisory,
// best-effort loss-of-sync recovery, not a guarantee.
func (r *Reader) resync(n int) {
	r.resyncs++
	if n > 0 && n <= len(r.buf) {
		r.buf = r.buf[n:]
		return
	}
	r.buf = r.buf[1:]
}

func (r *Reader) refill() bool {
	chunk, err := r.src.ReadChunk(r.chunkSize)
	if len(chunk) > 0 {
		r.bytesRead += int64(len(chunk))
		r.buf = append(r.buf, chunk...)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.eof = true
			return true
		}
		r.err = err
		return false
	}
	return true
}

// Record returns the record decoded by the last successful Next. Ownership
// passes to the caller.
func (r *Reader) Record() *codec.Record { return r.rec }

// Err returns the first source error encountered, if any. Running off the
// end of the source is not an error.
func (r *Reader) Err() error { return r.err }

// Resyncs counts recovery attempts after corrupt frames.
func (r *Reader) Resyncs() int { return r.resyncs }

// BytesRead counts bytes pulled from the source so far.
func (r *Reader) BytesRead() int64 { return r.bytesRead }

// Close closes the underlying source when it is closable.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
