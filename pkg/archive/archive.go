// Package archive stores decoded telemetry records in an embedded pebble
// database keyed by type code and timestamp, so ground-station tooling can
// query the latest reading per sensor or scan a time range without
// replaying the raw log.
package archive

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/cockroachdb/pebble"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// ErrNotFound is returned when no record exists for a type code.
var ErrNotFound = errors.New("no record archived for type")

// Archive is a persistent store of decoded records. Keys sort by type code
// then timestamp, so a per-type scan is a single range iteration.
type Archive struct {
	db *pebble.DB
}

// Open opens (or creates) an archive at path.
func Open(path string) (*Archive, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Archive{db: db}, nil
}

// key layout: fourcc[4] | timestamp[8] big-endian
func recordKey(fc codec.FourCC, timestamp uint64) []byte {
	key := make([]byte, 12)
	copy(key[0:4], fc[:])
	binary.BigEndian.PutUint64(key[4:12], timestamp)
	return key
}

// Put archives one decoded record.
func (a *Archive) Put(rec *codec.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return a.db.Set(recordKey(rec.FourCC, rec.Timestamp), data, pebble.NoSync)
}

// Latest returns the most recent record archived for a type code.
func (a *Archive) Latest(fc codec.FourCC) (*codec.Record, error) {
	iter, err := a.db.NewIter(prefixBounds(fc))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	if !iter.Last() {
		return nil, ErrNotFound
	}
	return decodeValue(iter.Value())
}

// Scan visits every archived record for a type code in timestamp order.
// Returning an error from fn stops the scan.
func (a *Archive) Scan(fc codec.FourCC, fn func(*codec.Record) error) error {
	iter, err := a.db.NewIter(prefixBounds(fc))
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeValue(iter.Value())
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Close closes the underlying database.
func (a *Archive) Close() error { return a.db.Close() }

func prefixBounds(fc codec.FourCC) *pebble.IterOptions {
	lower := recordKey(fc, 0)
	upper := recordKey(fc, ^uint64(0))
	upper = append(upper, 0x00) // make the upper bound inclusive
	return &pebble.IterOptions{LowerBound: lower, UpperBound: upper}
}

func decodeValue(data []byte) (*codec.Record, error) {
	var rec codec.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
