//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

// FuzzDecodeHeader tests the header codec against arbitrary byte windows.
func FuzzDecodeHeader(f *testing.F) {
	// Seed corpus
	f.Add(EncodeHeader(MakeFourCC("ADIS"), 123456789, 24))
	f.Add(EncodeHeader(GPSFourCC(94), 1<<48-1, 0))
	f.Add([]byte{})
	f.Add([]byte{0x41, 0x44, 0x49, 0x53})

	f.Fuzz(func(t *testing.T, data []byte) {
		h, err := DecodeHeader(data)

		// Anything but exactly 12 bytes must be rejected.
		if len(data) != HeaderSize {
			if !errors.Is(err, ErrSizeMismatch) {
				t.Fatalf("len %d: got %v, want ErrSizeMismatch", len(data), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("DecodeHeader failed on 12 bytes: %v", err)
		}

		// The header codec is lossless: re-encoding reproduces the input.
		if h.Timestamp > TimestampMask {
			t.Errorf("timestamp %#x exceeds 48 bits", h.Timestamp)
		}
		raw := EncodeHeader(h.FourCC, h.Timestamp, h.Length)
		if !bytes.Equal(raw, data) {
			t.Errorf("re-encode mismatch: got %x, want %x", raw, data)
		}
	})
}

// FuzzMessageDecode tests the body codec against arbitrary byte windows.
func FuzzMessageDecode(f *testing.F) {
	mt := adisType()

	// Seed corpus
	f.Add(make([]byte, mt.Size()))
	f.Add(mt.Encode(map[string]float64{"VCC": 5, "Temp": 26.5, "Gyro_X": -1}))
	f.Add([]byte{0xFF})

	f.Fuzz(func(t *testing.T, body []byte) {
		fields, err := mt.Decode(body)

		// Strict size check: short and long bodies both fail.
		if len(body) != mt.Size() {
			if !errors.Is(err, ErrSizeMismatch) {
				t.Fatalf("len %d: got %v, want ErrSizeMismatch", len(body), err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Decode failed on exact-size body: %v", err)
		}
		if len(fields) != len(mt.Layout.Fields) {
			t.Errorf("decoded %d fields, want %d", len(fields), len(mt.Layout.Fields))
		}

		// Decoding is deterministic and never mutates its input.
		again, err := mt.Decode(body)
		if err != nil {
			t.Fatalf("second Decode failed: %v", err)
		}
		if !reflect.DeepEqual(fields, again) {
			t.Errorf("repeated decode diverged: %v vs %v", fields, again)
		}
	})
}
