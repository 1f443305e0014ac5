package iccmax

import "slices"

// LutAToB is a lutAToBType ('mAB ') payload:
// A curves -> CLUT -> M curves -> matrix -> B curves.
//
// Absent sections are nil. Curves are *Curve or *ParametricCurve.
type LutAToB struct {
	InputChannels  uint8
	OutputChannels uint8
	BCurves        []TagData
	Matrix         *Matrix
	MCurves        []TagData
	CLUT           *CLUT
	ACurves        []TagData
}

func (*LutAToB) TypeSignature() Signature { return TypeLutAToB }
func (*LutAToB) isTagData()               {}

// LutBToA is a lutBToAType ('mBA ') payload:
// B curves -> matrix -> M curves -> CLUT -> A curves.
type LutBToA LutAToB

func (*LutBToA) TypeSignature() Signature { return TypeLutBToA }
func (*LutBToA) isTagData()               {}

const modularHeaderSize = 32

// modular section offsets in wire order
const (
	sectionB = iota
	sectionMatrix
	sectionM
	sectionCLUT
	sectionA
)

var sectionNames = [...]string{"B curves", "matrix", "M curves", "clut", "A curves"}

func lutAToBDecoder(b *block) (TagData, error) {
	return modularLut(b, true)
}

func lutBToADecoder(b *block) (TagData, error) {
	l, err := modularLut(b, false)
	if err != nil {
		return nil, err
	}
	return (*LutBToA)(l.(*LutAToB)), nil
}

func modularLut(b *block, aToB bool) (TagData, error) {
	inCh, outCh := b.u8(), b.u8()
	b.skip(2)
	var offsets [5]uint32
	for i := range offsets {
		offsets[i] = b.u32()
	}
	if b.err != nil {
		return nil, b.err
	}
	switch {
	case inCh == 0 || inCh > maxLutChannels:
		b.fail("%d input channels", inCh)
	case outCh == 0 || outCh > maxLutChannels:
		b.fail("%d output channels", outCh)
	}
	for i, off := range offsets {
		if off != 0 {
			b.resolve(PositionNumber{Offset: off}, modularHeaderSize, true, sectionNames[i])
			if b.err == nil && off >= b.size {
				b.fail("%s offset %d is at or past the end of the tag", sectionNames[i], off)
			}
		}
	}
	// curve counts per section; the matrix sits on the M curve side
	bCount, mCount, aCount := int(outCh), int(outCh), int(inCh)
	if !aToB {
		bCount, mCount, aCount = int(inCh), int(inCh), int(outCh)
	}
	has := func(section int) bool { return offsets[section] != 0 }
	switch {
	case b.err != nil:
	case !has(sectionB):
		b.fail("B curves are required")
	case has(sectionMatrix) && mCount != 3:
		b.fail("matrix present with %d channels", mCount)
	case has(sectionMatrix) != has(sectionM):
		b.fail("matrix and M curves must be present together")
	case has(sectionCLUT) != has(sectionA):
		b.fail("clut and A curves must be present together")
	case inCh != outCh && !has(sectionCLUT):
		b.fail("%d to %d channels without a clut", inCh, outCh)
	}
	if b.err != nil {
		return nil, b.err
	}

	l := &LutAToB{InputChannels: inCh, OutputChannels: outCh}
	for section, off := range offsets {
		if off == 0 || b.err != nil {
			continue
		}
		limit := b.start + int64(sectionLimit(offsets, off, b.size))
		b.seekRel(off)
		switch section {
		case sectionB:
			l.BCurves = curveSet(b, bCount, limit, "B")
		case sectionMatrix:
			l.Matrix = matrixSection(b, limit)
		case sectionM:
			l.MCurves = curveSet(b, mCount, limit, "M")
		case sectionCLUT:
			l.CLUT = clutSection(b, inCh, outCh, limit)
		case sectionA:
			l.ACurves = curveSet(b, aCount, limit, "A")
		}
	}
	b.seekEnd()
	return b.result(l)
}

// sectionLimit is the end of the section at off: the next greater offset, or the tag end.
func sectionLimit(offsets [5]uint32, off uint32, size uint32) uint32 {
	sorted := slices.Sorted(slices.Values(offsets[:]))
	for _, o := range sorted {
		if o > off {
			return o
		}
	}
	return size
}
