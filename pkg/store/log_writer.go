package store

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/segmentio/ksuid"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// NewSegmentPath returns a unique, time-sortable path for a fresh log
// segment in dir.
func NewSegmentPath(dir string) string {
	return filepath.Join(dir, ksuid.New().String()+".tlm")
}

// LogWriter handles append-only writes of telemetry frames to a log file.
type LogWriter struct {
	file       *os.File
	writer     *bufio.Writer
	fsyncTimer *time.Timer
	config     LogWriterConfig
	mutex      sync.Mutex
	offset     int64
}

// NewLogWriter opens (or creates) the log file for appending.
func NewLogWriter(config LogWriterConfig) (*LogWriter, error) {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	bufSize := config.BufferSize
	if bufSize <= 0 {
		bufSize = 64 << 10
	}

	w := &LogWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, bufSize),
		config: config,
		offset: stat.Size(),
	}

	if config.FsyncInterval > 0 {
		w.fsyncTimer = time.AfterFunc(config.FsyncInterval, w.timedSync)
	}

	return w, nil
}

// Append encodes one message as a frame (header plus body) and appends it.
// It returns the byte offset the frame starts at.
func (w *LogWriter) Append(mt *codec.MessageType, timestamp uint64, data map[string]float64) (int64, error) {
	body := mt.Encode(data)
	header := codec.EncodeHeader(mt.FourCC, timestamp, uint16(len(body)))
	return w.Write(append(header, body...))
}

// Write appends raw frame bytes, already framed by the caller. Datagram
// capture uses this path so the log stays byte-identical to the wire.
func (w *LogWriter) Write(frame []byte) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	n, err := w.writer.Write(frame)
	if err != nil {
		return 0, err
	}

	frameOffset := w.offset
	w.offset += int64(n)

	if w.config.FsyncInterval == 0 {
		if err := w.sync(); err != nil {
			return 0, err
		}
	}

	return frameOffset, nil
}

// Offset returns the current end-of-log offset.
func (w *LogWriter) Offset() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Sync flushes the buffer and fsyncs the file.
func (w *LogWriter) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.sync()
}

// Close flushes, syncs and closes the log file.
func (w *LogWriter) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.fsyncTimer != nil {
		w.fsyncTimer.Stop()
	}
	if err := w.sync(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func (w *LogWriter) timedSync() {
	w.mutex.Lock()
	w.sync() // best effort in the timer callback
	w.mutex.Unlock()
	w.fsyncTimer.Reset(w.config.FsyncInterval)
}

func (w *LogWriter) sync() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}
