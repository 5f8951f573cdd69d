package codec

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// adisType mirrors the inertial sensor entry of the flight catalogue,
// duplicated here so the codec tests do not depend on the catalog package.
func adisType() *MessageType {
	return &MessageType{
		FourCC: MakeFourCC("ADIS"),
		Name:   "ADIS16405",
		Layout: NewLayout(binary.BigEndian,
			Field{Name: "VCC", Type: Uint16, Units: Units{MKS: "volt", Scale: 0.002418}},
			Field{Name: "Gyro_X", Type: Int16, Units: Units{MKS: "hertz", Scale: 0.05}},
			Field{Name: "Gyro_Y", Type: Int16, Units: Units{MKS: "hertz", Scale: 0.05}},
			Field{Name: "Gyro_Z", Type: Int16, Units: Units{MKS: "hertz", Scale: 0.05}},
			Field{Name: "Acc_X", Type: Int16, Units: Units{MKS: "meter/s/s", Scale: 0.0333}},
			Field{Name: "Acc_Y", Type: Int16, Units: Units{MKS: "meter/s/s", Scale: 0.0333}},
			Field{Name: "Acc_Z", Type: Int16, Units: Units{MKS: "meter/s/s", Scale: 0.0333}},
			Field{Name: "Magn_X", Type: Int16, Units: Units{MKS: "tesla", Scale: 0.05}},
			Field{Name: "Magn_Y", Type: Int16, Units: Units{MKS: "tesla", Scale: 0.05}},
			Field{Name: "Magn_Z", Type: Int16, Units: Units{MKS: "tesla", Scale: 0.05}},
			Field{Name: "Temp", Type: Int16, Units: Units{MKS: "degree c", Scale: 0.14, Bias: 25}},
			Field{Name: "Aux_ADC", Type: Uint16, Units: Units{MKS: "volt", Scale: 806}},
		),
	}
}

func TestMessageEncodeDecodeRoundTrip(t *testing.T) {
	mt := adisType()
	if mt.Size() != 24 {
		t.Fatalf("ADIS body size = %d, want 24", mt.Size())
	}

	in := map[string]float64{
		"VCC":    5.0,
		"Gyro_Z": 1.0,
		"Acc_X":  -9.8,
		"Temp":   26.5,
	}

	body := mt.Encode(in)
	if len(body) != 24 {
		t.Fatalf("encoded body is %d bytes, want 24", len(body))
	}

	out, err := mt.Decode(body)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	// Populated fields come back within 1% (integer truncation of the
	// affine transform); omitted fields come back as exactly zero.
	for name, want := range in {
		got := out[name]
		if math.Abs(got-want) > math.Abs(want)*0.01 {
			t.Errorf("%s: got %g, want %g within 1%%", name, got, want)
		}
	}
	for _, name := range []string{"Gyro_X", "Gyro_Y", "Acc_Y", "Acc_Z", "Magn_X", "Aux_ADC"} {
		if got := out[name]; got != 0 {
			t.Errorf("omitted field %s decoded to %g, want 0", name, got)
		}
	}
}

func TestMessageEncodeTruncatesTowardZero(t *testing.T) {
	mt := adisType()

	// Temp 26.106 -> wire (26.106-25)/0.14 = 7.9: must pack as 7, not 8.
	body := mt.Encode(map[string]float64{"Temp": 26.106})
	wire := int16(binary.BigEndian.Uint16(body[20:22]))
	if wire != 7 {
		t.Errorf("positive wire value = %d, want 7 (truncated, not rounded)", wire)
	}

	// Negative values truncate toward zero as well: -0.395/0.05 = -7.9 -> -7.
	body = mt.Encode(map[string]float64{"Gyro_X": -0.395})
	wire = int16(binary.BigEndian.Uint16(body[2:4]))
	if wire != -7 {
		t.Errorf("negative wire value = %d, want -7 (truncated toward zero)", wire)
	}
}

func TestMessageEncodeSaturatesOutOfRange(t *testing.T) {
	mt := adisType()

	// VCC is uint16 with scale 0.002418: a huge native value overflows the
	// wire type and a negative one underflows it. Float-to-integer
	// conversion is undefined on overflow in Go, so encoding must saturate
	// at the type's bounds instead of producing platform-dependent bytes.
	body := mt.Encode(map[string]float64{"VCC": 1e9})
	if got := binary.BigEndian.Uint16(body[0:2]); got != 0xFFFF {
		t.Errorf("overflowing unsigned wire value = %#x, want 0xFFFF", got)
	}
	body = mt.Encode(map[string]float64{"VCC": -1.0})
	if got := binary.BigEndian.Uint16(body[0:2]); got != 0 {
		t.Errorf("negative unsigned wire value = %#x, want 0", got)
	}

	// Temp is int16 (scale 0.14, bias 25): saturate both signed bounds.
	body = mt.Encode(map[string]float64{"Temp": 1e12})
	if got := int16(binary.BigEndian.Uint16(body[20:22])); got != math.MaxInt16 {
		t.Errorf("overflowing signed wire value = %d, want %d", got, math.MaxInt16)
	}
	body = mt.Encode(map[string]float64{"Temp": -1e12})
	if got := int16(binary.BigEndian.Uint16(body[20:22])); got != math.MinInt16 {
		t.Errorf("underflowing signed wire value = %d, want %d", got, math.MinInt16)
	}

	// NaN packs as zero.
	body = mt.Encode(map[string]float64{"Gyro_X": math.NaN()})
	if got := int16(binary.BigEndian.Uint16(body[2:4])); got != 0 {
		t.Errorf("NaN wire value = %d, want 0", got)
	}
}

func TestMessageEncodeIgnoresExtraKeys(t *testing.T) {
	mt := adisType()
	a := mt.Encode(map[string]float64{"VCC": 5.0})
	b := mt.Encode(map[string]float64{"VCC": 5.0, "Bogus": 1.0, "AlsoBogus": -3})
	if string(a) != string(b) {
		t.Error("extra record keys changed the encoding")
	}
}

func TestMessageDecodeSizeStrict(t *testing.T) {
	mt := adisType()
	for _, size := range []int{0, 1, 23, 25, 48} {
		_, err := mt.Decode(make([]byte, size))
		if !errors.Is(err, ErrSizeMismatch) {
			t.Errorf("size %d: got %v, want ErrSizeMismatch", size, err)
		}
	}
}

func TestMessageBytesFields(t *testing.T) {
	mt := &MessageType{
		FourCC: MakeFourCC("VERS"),
		Name:   "Version",
		Layout: NewLayout(binary.BigEndian,
			Field{Name: "Version", Type: Bytes, Size: 17},
		),
	}
	if mt.Size() != 17 {
		t.Fatalf("size = %d, want 17", mt.Size())
	}

	// Blobs encode as zeros and never appear in decoded records.
	body := mt.Encode(map[string]float64{"Version": 42})
	for i, b := range body {
		if b != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, b)
		}
	}

	out, err := mt.Decode(make([]byte, 17))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := out["Version"]; ok {
		t.Error("blob field appeared in decoded record")
	}
}

func TestMessageFloatFields(t *testing.T) {
	mt := &MessageType{
		FourCC: MakeFourCC("ROLL"),
		Name:   "RollServo",
		Layout: NewLayout(binary.BigEndian,
			Field{Name: "Angle", Type: Float64},
			Field{Name: "Disable", Type: Uint8},
		),
	}

	in := map[string]float64{"Angle": -12.75, "Disable": 1}
	out, err := mt.Decode(mt.Encode(in))
	if err != nil {
		t.Fatal(err)
	}
	if out["Angle"] != -12.75 {
		t.Errorf("Angle = %g, want -12.75 exactly", out["Angle"])
	}
	if out["Disable"] != 1 {
		t.Errorf("Disable = %g, want 1", out["Disable"])
	}
}

func TestUnitsIdentity(t *testing.T) {
	// The zero value is the identity transform.
	var u Units
	if u.ToWire(42) != 42 || u.ToNative(42) != 42 {
		t.Error("zero-value Units is not the identity transform")
	}

	scaled := Units{Scale: 0.5, Bias: 10}
	if got := scaled.ToNative(scaled.ToWire(37)); got != 37 {
		t.Errorf("affine round trip = %g, want 37", got)
	}
}
