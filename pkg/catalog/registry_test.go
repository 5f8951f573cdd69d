package catalog

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psas-avionics/telempack/pkg/codec"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := New()
	mt := &codec.MessageType{
		FourCC: codec.MakeFourCC("TEST"),
		Name:   "Test",
		Layout: codec.NewLayout(binary.BigEndian, codec.Field{Name: "X", Type: codec.Uint32}),
	}
	require.NoError(t, r.Register(mt))

	got, ok := r.Lookup(codec.MakeFourCC("TEST"))
	require.True(t, ok)
	assert.Same(t, mt, got)

	_, ok = r.Lookup(codec.MakeFourCC("NOPE"))
	assert.False(t, ok, "lookup miss must not be an error, just a miss")
}

func TestRegistryDuplicateTypeCode(t *testing.T) {
	r := New()
	mt := &codec.MessageType{
		FourCC: codec.MakeFourCC("DUPE"),
		Name:   "First",
		Layout: codec.NewLayout(binary.BigEndian, codec.Field{Name: "X", Type: codec.Uint8}),
	}
	require.NoError(t, r.Register(mt))

	err := r.Register(&codec.MessageType{
		FourCC: codec.MakeFourCC("DUPE"),
		Name:   "Second",
		Layout: codec.NewLayout(binary.BigEndian),
	})
	assert.ErrorIs(t, err, codec.ErrDuplicateType)
	assert.Equal(t, 1, r.Len())
}

func TestStandardCatalogueSizes(t *testing.T) {
	r := Standard()

	testCases := []struct {
		fourcc string
		name   string
		size   int
	}{
		{"SEQN", "SequenceNo", 4},
		{"ADIS", "ADIS16405", 24},
		{"MPL3", "MPL3115A2", 6},
		{"ROLL", "RollServo", 9},
		{"RNHH", "RNHHealth", 26},
		{"RNHP", "RNHPower", 16},
		{"RNHU", "RNHUmbilical", 1},
		{"FCFH", "FCFHealth", 124},
		{"VERS", "Version", 17},
		{"LTCH", "LaunchTowerComputer", 46},
		{"GPS1", "GPSFix", 52},
		{"GPS2", "GPSFixQuality", 16},
		{"GPS80", "GPSWAASMessage", 40},
		{"GPS93", "GPSWAASEphemeris", 56},
		{"GPS94", "GPSIonosphereUTC", 96},
		{"GPS95", "GPSEphemeris", 128},
		{"GPS96", "GPSPsudorange", 300},
		{"GPS97", "GPSProcessor", 28},
		{"GPS98", "GPSAlmanac", 68},
		{"GPS99", "GPSSatellite", 304},
	}
	assert.Equal(t, len(testCases), r.Len())

	for _, tc := range testCases {
		t.Run(tc.fourcc, func(t *testing.T) {
			fc, err := codec.ParseFourCC(tc.fourcc)
			require.NoError(t, err)
			mt, ok := r.Lookup(fc)
			require.True(t, ok, "missing catalogue entry")
			assert.Equal(t, tc.name, mt.Name)
			assert.Equal(t, tc.size, mt.Size())
		})
	}
}

func TestStandardGPSSubtypeCoverage(t *testing.T) {
	// The receiver emits exactly these subtypes; a frame of any of them must
	// decode with fields, not fall through the unknown-type skip path.
	r := Standard()
	for _, subtype := range []byte{1, 2, 80, 93, 94, 95, 96, 97, 98, 99} {
		mt, ok := r.Lookup(codec.GPSFourCC(subtype))
		require.True(t, ok, "GPS%d missing from the catalogue", subtype)
		assert.NotEmpty(t, mt.Layout.Fields, "GPS%d has an empty layout", subtype)
	}
}

func TestStandardGPSSatelliteChannels(t *testing.T) {
	r := Standard()
	sat, ok := r.Lookup(codec.GPSFourCC(99))
	require.True(t, ok)

	// 4 summary fields + 12 channels x 18 fields + 2 trailing fields.
	assert.Len(t, sat.Layout.Fields, 4+12*18+2)
	assert.Equal(t, "Channel_0", sat.Layout.Fields[4].Name)
	assert.Equal(t, "N_Carr_Offset_11", sat.Layout.Fields[4+12*18-1].Name)
	assert.Equal(t, "spare", sat.Layout.Fields[len(sat.Layout.Fields)-1].Name)
}

func TestStandardFixedLengthAllowList(t *testing.T) {
	// Exactly VERS and MPL3 carry the unreliable-length quirk; the list is
	// historical and must not grow by accident.
	r := Standard()
	for _, mt := range r.Types() {
		fixed := mt.FourCC.String() == "VERS" || mt.FourCC.String() == "MPL3"
		assert.Equal(t, fixed, mt.FixedLength, "FixedLength flag on %s", mt.FourCC)
	}
}

func TestStandardGPSFamilyByteOrder(t *testing.T) {
	r := Standard()
	for _, mt := range r.Types() {
		want := binary.ByteOrder(binary.BigEndian)
		if mt.FourCC.IsGPS() {
			want = binary.LittleEndian
		}
		assert.Equal(t, want, mt.Layout.Order, "byte order for %s", mt.FourCC)
	}
}
