package iccmax

// ViewingConditions is a viewingConditionsType ('view') payload.
type ViewingConditions struct {
	Illuminant     XYZNumber
	Surround       XYZNumber
	IlluminantType uint32
}

func (*ViewingConditions) TypeSignature() Signature { return TypeViewingConditions }
func (*ViewingConditions) isTagData()               {}

// SpectralViewingConditions is a spectralViewingConditionsType ('svcn') payload.
type SpectralViewingConditions struct {
	ObserverType    Signature
	ObserverRange   SpectralRange
	ObserverCMF     [3][]float32 // colour matching functions, ObserverRange.Steps each
	IlluminantType  Signature
	IlluminantRange SpectralRange
	Illuminant      []float32 // IlluminantRange.Steps samples
	IlluminantXYZ   [3]float32
	SurroundXYZ     [3]float32
}

func (*SpectralViewingConditions) TypeSignature() Signature { return TypeSpectralViewingConditions }
func (*SpectralViewingConditions) isTagData()               {}

func viewingConditionsDecoder(b *block) (TagData, error) {
	return b.result(&ViewingConditions{
		Illuminant:     b.xyz(),
		Surround:       b.xyz(),
		IlluminantType: b.u32(),
	})
}

func spectralViewingConditionsDecoder(b *block) (TagData, error) {
	result := &SpectralViewingConditions{}
	result.ObserverType = b.sig()
	result.ObserverRange = b.spectralRange()
	b.skip(2)
	for i := range result.ObserverCMF {
		result.ObserverCMF[i] = float32Samples(b, result.ObserverRange.Steps, "observer samples")
	}
	result.IlluminantType = b.sig()
	result.IlluminantRange = b.spectralRange()
	b.skip(2)
	result.Illuminant = float32Samples(b, result.IlluminantRange.Steps, "illuminant samples")
	result.IlluminantXYZ = b.xyzFloat32()
	result.SurroundXYZ = b.xyzFloat32()
	return b.result(result)
}

func float32Samples(b *block, steps uint16, what string) []float32 {
	values := make([]float32, b.count(uint64(steps), 4, what))
	for i := range values {
		values[i] = b.f32()
	}
	return values
}
