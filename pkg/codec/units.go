package codec

// Units is the affine transform between a field's wire representation and
// its engineering-unit value:
//
//	native = wire*Scale + Bias
//	wire   = (native - Bias) / Scale
//
// The zero value is the identity transform. MKS names the engineering unit
// for exporters and is not used by the codec itself.
type Units struct {
	MKS   string
	Scale float64
	Bias  float64
}

func (u Units) scaleby() float64 {
	if u.Scale == 0 {
		return 1
	}
	return u.Scale
}

// ToWire converts an engineering-unit value to its wire representation.
func (u Units) ToWire(native float64) float64 {
	return (native - u.Bias) / u.scaleby()
}

// ToNative converts a wire value back to engineering units.
func (u Units) ToNative(wire float64) float64 {
	return wire*u.scaleby() + u.Bias
}
