package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FourCC is the four-byte code identifying a message type. The raw bytes are
// the canonical dispatch key; String renders a human-readable form.
type FourCC [4]byte

var gpsPrefix = []byte("GPS")

// MakeFourCC builds a code from a four-character ASCII string. It panics on
// the wrong length, so it is only suitable for static catalog definitions.
func MakeFourCC(s string) FourCC {
	if len(s) != 4 {
		panic("codec: fourcc must be exactly 4 characters: " + s)
	}
	var fc FourCC
	copy(fc[:], s)
	return fc
}

// GPSFourCC builds a GPS-family code: the ASCII prefix "GPS" followed by a
// raw numeric subtype byte. The subtype is not printable ASCII.
func GPSFourCC(subtype byte) FourCC {
	var fc FourCC
	copy(fc[:], gpsPrefix)
	fc[3] = subtype
	return fc
}

// IsGPS reports whether the code belongs to the GPS sub-family.
func (fc FourCC) IsGPS() bool {
	return bytes.Equal(fc[:3], gpsPrefix)
}

// String renders the code for humans. GPS-family codes print the subtype
// byte as a decimal suffix (GPS\x5e prints as GPS94, not GPS^) so a subtype
// that happens to collide with printable ASCII stays unambiguous.
func (fc FourCC) String() string {
	if fc.IsGPS() {
		return "GPS" + strconv.Itoa(int(fc[3]))
	}
	return string(fc[:])
}

// MarshalJSON renders the code in its String form.
func (fc FourCC) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(fc.String())), nil
}

// UnmarshalJSON parses either the plain or the GPS decimal form.
func (fc *FourCC) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, err := ParseFourCC(s)
	if err != nil {
		return err
	}
	*fc = parsed
	return nil
}

// ParseFourCC is the inverse of String: it accepts either a plain
// four-character code or the GPS decimal form (e.g. "GPS94").
func ParseFourCC(s string) (FourCC, error) {
	if strings.HasPrefix(s, "GPS") && len(s) > 3 {
		if n, err := strconv.Atoi(s[3:]); err == nil {
			if n < 0 || n > 255 {
				return FourCC{}, fmt.Errorf("%w: GPS subtype %d out of range", ErrBadFourCC, n)
			}
			return GPSFourCC(byte(n)), nil
		}
	}
	if len(s) != 4 {
		return FourCC{}, fmt.Errorf("%w: %q", ErrBadFourCC, s)
	}
	return MakeFourCC(s), nil
}
