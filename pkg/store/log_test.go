package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

func TestLogWriteReadRoundTrip(t *testing.T) {
	reg := catalog.Standard()
	path := filepath.Join(t.TempDir(), "flight.tlm")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: path})
	require.NoError(t, err)

	adis, _ := reg.Lookup(codec.MakeFourCC("ADIS"))
	seqn, _ := reg.Lookup(codec.MakeFourCC("SEQN"))

	off, err := writer.Append(seqn, 100, map[string]float64{"Sequence": 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)

	off, err = writer.Append(adis, 200, map[string]float64{"VCC": 5})
	require.NoError(t, err)
	assert.Equal(t, int64(codec.HeaderSize+seqn.Size()), off)

	_, err = writer.Append(seqn, 300, map[string]float64{"Sequence": 2})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader, err := NewLogReader(LogReaderConfig{FilePath: path})
	require.NoError(t, err)

	records := reader.Records(reg)
	var got []*codec.Record
	for records.Next() {
		got = append(got, records.Record())
	}
	require.NoError(t, records.Err())
	require.NoError(t, records.Close())

	require.Len(t, got, 3)
	assert.Equal(t, uint64(100), got[0].Timestamp)
	assert.Equal(t, float64(1), got[0].Fields["Sequence"])
	assert.InDelta(t, 5.0, got[1].Fields["VCC"], 0.05)
	assert.Equal(t, float64(2), got[2].Fields["Sequence"])
}

func TestLogReaderSmallChunks(t *testing.T) {
	// A tiny chunk size forces frames to straddle every read boundary.
	reg := catalog.Standard()
	path := filepath.Join(t.TempDir(), "chunky.tlm")

	writer, err := NewLogWriter(LogWriterConfig{FilePath: path})
	require.NoError(t, err)
	seqn, _ := reg.Lookup(codec.MakeFourCC("SEQN"))
	for i := 0; i < 10; i++ {
		_, err := writer.Append(seqn, uint64(i), map[string]float64{"Sequence": float64(i)})
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	reader, err := NewLogReader(LogReaderConfig{FilePath: path, ChunkSize: 3})
	require.NoError(t, err)
	defer reader.Close()

	records := reader.Records(reg)
	count := 0
	for records.Next() {
		assert.Equal(t, float64(count), records.Record().Fields["Sequence"])
		count++
	}
	require.NoError(t, records.Err())
	assert.Equal(t, 10, count)
}

func TestLogWriterAppendsAcrossReopen(t *testing.T) {
	reg := catalog.Standard()
	path := filepath.Join(t.TempDir(), "reopen.tlm")
	seqn, _ := reg.Lookup(codec.MakeFourCC("SEQN"))

	for i := 0; i < 2; i++ {
		writer, err := NewLogWriter(LogWriterConfig{FilePath: path})
		require.NoError(t, err)
		_, err = writer.Append(seqn, uint64(i), map[string]float64{"Sequence": float64(i)})
		require.NoError(t, err)
		require.NoError(t, writer.Close())
	}

	reader, err := NewLogReader(LogReaderConfig{FilePath: path})
	require.NoError(t, err)
	defer reader.Close()

	records := reader.Records(reg)
	count := 0
	for records.Next() {
		count++
	}
	require.NoError(t, records.Err())
	assert.Equal(t, 2, count, "reopening must append, not truncate")
}

func TestNewSegmentPath(t *testing.T) {
	dir := t.TempDir()
	a := NewSegmentPath(dir)
	b := NewSegmentPath(dir)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".tlm"))
	assert.Equal(t, dir, filepath.Dir(a))
}
