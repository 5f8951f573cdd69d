package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

func TestCSVWriter(t *testing.T) {
	reg := catalog.Standard()
	mpl3, _ := reg.Lookup(codec.MakeFourCC("MPL3"))

	var buf strings.Builder
	w := NewCSVWriter(&buf, mpl3)

	require.NoError(t, w.WriteRecord(&codec.Record{
		FourCC:    mpl3.FourCC,
		Timestamp: 1000,
		Fields:    map[string]float64{"Pressure": 101.325, "Temp": 21.5},
	}))
	require.NoError(t, w.WriteRecord(&codec.Record{
		FourCC:    mpl3.FourCC,
		Timestamp: 2000,
		Fields:    map[string]float64{"Pressure": 99.8},
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Timestamp,Pressure,Temp", lines[0])
	assert.Equal(t, "1000,101.325,21.5", lines[1])
	assert.Equal(t, "2000,99.8,0", lines[2])
}

func TestCSVWriterSkipsBlobColumns(t *testing.T) {
	reg := catalog.Standard()
	waas, _ := reg.Lookup(codec.GPSFourCC(80))

	var buf strings.Builder
	w := NewCSVWriter(&buf, waas)
	require.NoError(t, w.WriteRecord(&codec.Record{
		FourCC:    waas.FourCC,
		Timestamp: 1,
		Fields:    map[string]float64{"PRN": 12},
	}))
	require.NoError(t, w.Flush())

	header := strings.Split(strings.TrimSpace(buf.String()), "\n")[0]
	assert.NotContains(t, header, "Waas_Msg", "blob fields have no engineering value")
	assert.Contains(t, header, "PRN")
}

func TestCSVWriterRejectsWrongType(t *testing.T) {
	reg := catalog.Standard()
	mpl3, _ := reg.Lookup(codec.MakeFourCC("MPL3"))

	var buf strings.Builder
	w := NewCSVWriter(&buf, mpl3)
	err := w.WriteRecord(&codec.Record{FourCC: codec.MakeFourCC("ADIS"), Timestamp: 1})
	assert.Error(t, err)
}
