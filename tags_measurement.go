package iccmax

// Measurement is a measurementType ('meas') payload.
type Measurement struct {
	Observer   uint32 // 1 = CIE 1931, 2 = CIE 1964
	Backing    XYZNumber
	Geometry   uint32
	Flare      float64
	Illuminant uint32
}

func (*Measurement) TypeSignature() Signature { return TypeMeasurement }
func (*Measurement) isTagData()               {}

func measurementDecoder(b *block) (TagData, error) {
	return b.result(&Measurement{
		Observer:   b.u32(),
		Backing:    b.xyz(),
		Geometry:   b.u32(),
		Flare:      b.u16f16(),
		Illuminant: b.u32(),
	})
}
