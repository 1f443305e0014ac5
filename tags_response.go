package iccmax

// ResponseCurveSet16 is a responseCurveSet16Type ('rcs2') payload.
type ResponseCurveSet16 struct {
	Channels     uint16
	Measurements []ResponseMeasurement
}

func (*ResponseCurveSet16) TypeSignature() Signature { return TypeResponseCurveSet16 }
func (*ResponseCurveSet16) isTagData()               {}

// ResponseMeasurement is one measurement type of a response curve set.
type ResponseMeasurement struct {
	Unit Signature // e.g. 'StaA'
	// MaxColorant is the XYZ of the maximum colorant value, per channel
	MaxColorant []XYZNumber
	// Responses holds the response curve of each channel
	Responses [][]Response16Number
}

func responseCurveSet16Decoder(b *block) (TagData, error) {
	channels := b.u16()
	n := b.count(uint64(b.u16()), 4, "measurement types")
	minOffset := uint32(12 + 4*n)
	offsets := make([]uint32, n)
	for i := range offsets {
		offsets[i] = b.u32()
	}
	result := &ResponseCurveSet16{Channels: channels, Measurements: make([]ResponseMeasurement, 0, n)}
	for _, off := range offsets {
		p := PositionNumber{Offset: off}
		if !b.resolve(p, minOffset, true, "measurement") {
			break
		}
		if off >= b.size {
			b.fail("measurement offset %d is at or past the end of the tag", off)
			break
		}
		b.follow(p, func() {
			result.Measurements = append(result.Measurements, responseMeasurement(b, channels))
		})
	}
	b.seekEnd()
	return b.result(result)
}

func responseMeasurement(b *block, channels uint16) ResponseMeasurement {
	m := ResponseMeasurement{Unit: b.sig()}
	counts := make([]uint32, b.count(uint64(channels), 4, "response counts"))
	for i := range counts {
		counts[i] = b.u32()
	}
	m.MaxColorant = make([]XYZNumber, b.count(uint64(channels), 12, "maximum colorant values"))
	for i := range m.MaxColorant {
		m.MaxColorant[i] = b.xyz()
	}
	m.Responses = make([][]Response16Number, 0, len(counts))
	for _, count := range counts {
		if b.err != nil {
			break
		}
		curve := make([]Response16Number, b.count(uint64(count), 8, "response values"))
		for j := range curve {
			device := b.u16()
			b.skip(2)
			curve[j] = Response16Number{Device: device, Measurement: b.s15f16()}
		}
		m.Responses = append(m.Responses, curve)
	}
	return m
}
