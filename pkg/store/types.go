// Package store persists telemetry frames in append-only .tlm log files and
// reads them back as a chunked byte source for the stream package. The file
// format is nothing but frames laid end to end; there is no container
// structure to maintain.
package store

import "time"

// LogWriterConfig holds configuration for the log writer.
type LogWriterConfig struct {
	FilePath      string        // Path to the log file
	FsyncInterval time.Duration // How often to fsync (0 = every write)
	BufferSize    int           // Write buffer size
}

// LogReaderConfig holds configuration for the log reader.
type LogReaderConfig struct {
	FilePath  string // Path to the log file
	ChunkSize int    // Bytes per read, 0 for the stream default
}
