package store

import (
	"io"
	"os"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/stream"
)

// LogReader provides sequential access to the bytes of a telemetry log
// file. It implements stream.ChunkSource; there is no seeking or rewind —
// restarting a replay means opening a new reader.
type LogReader struct {
	file   *os.File
	config LogReaderConfig
}

// NewLogReader opens the log file for reading from the start.
func NewLogReader(config LogReaderConfig) (*LogReader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}
	return &LogReader{file: file, config: config}, nil
}

// ReadChunk returns the next chunk of the file, up to max bytes (capped by
// the configured chunk size). io.EOF signals the end of the log.
func (r *LogReader) ReadChunk(max int) ([]byte, error) {
	if r.config.ChunkSize > 0 && max > r.config.ChunkSize {
		max = r.config.ChunkSize
	}
	buf := make([]byte, max)
	n, err := r.file.Read(buf)
	return buf[:n], err
}

// Records returns a record iterator over the remainder of the file,
// dispatching against reg.
func (r *LogReader) Records(reg *catalog.Registry) *stream.Reader {
	return stream.NewReader(reg, r, stream.ReaderConfig{ChunkSize: r.config.ChunkSize})
}

// Close closes the underlying file.
func (r *LogReader) Close() error { return r.file.Close() }

var _ stream.ChunkSource = (*LogReader)(nil)
var _ io.Closer = (*LogReader)(nil)
