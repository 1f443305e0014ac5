package iccmax

import "math"

// CLUT is a multi-dimensional colour lookup grid.
//
// Samples are stored flat, output channels varying fastest and the last input
// channel varying faster than the first. 8 bit samples are widened, not rescaled.
type CLUT struct {
	GridPoints     []uint8 // per input dimension, e.g. [17,17,17]
	InputChannels  uint8
	OutputChannels uint8
	Precision      uint8 // bytes per stored sample: 1 or 2
	Samples        []uint16
}

// SampleCount is the number of samples the grid dimensions call for.
func (c *CLUT) SampleCount() int {
	n, _ := gridSize(c.GridPoints, int(c.OutputChannels))
	return int(n)
}

// gridSize returns the product of the grid points times outputs; ok is false
// once the product no longer fits a 32 bit size.
func gridSize(gridPoints []uint8, outputs int) (n uint64, ok bool) {
	n = uint64(outputs)
	for _, g := range gridPoints {
		n *= uint64(g)
		if n > math.MaxUint32 {
			return 0, false
		}
	}
	return n, true
}

// ipow is integer exponentiation with the same overflow ceiling as gridSize.
func ipow(base uint64, exp int) (n uint64, ok bool) {
	n = 1
	for i := 0; i < exp; i++ {
		n *= base
		if n > math.MaxUint32 {
			return 0, false
		}
	}
	return n, true
}

// clutSamples reads count samples of precision bytes, not reading past limit (absolute).
func clutSamples(b *block, count uint64, precision uint8, limit int64) []uint16 {
	if b.err != nil {
		return nil
	}
	size := count * uint64(precision)
	if avail := limit - b.c.Pos(); avail < 0 || size > uint64(avail) {
		b.fail("clut of %d samples needs %d bytes, %d available", count, size, limit-b.c.Pos())
		return nil
	}
	samples := make([]uint16, count)
	for i := range samples {
		if precision == 1 {
			samples[i] = uint16(b.u8())
		} else {
			samples[i] = b.u16()
		}
	}
	return samples
}

// clutSection decodes the CLUT of a lutAToB/lutBToA tag.
func clutSection(b *block, inputs, outputs uint8, limit int64) *CLUT {
	if b.err != nil {
		return nil
	}
	if limit-b.c.Pos() < 20 {
		b.fail("clut header needs 20 bytes, %d available", limit-b.c.Pos())
		return nil
	}
	dims := b.raw(16)
	for i, g := range dims {
		switch {
		case i < int(inputs) && g < 2:
			b.fail("clut dimension %d has %d grid points", i, g)
		case i >= int(inputs) && g != 0:
			b.fail("clut dimension %d is unused but has %d grid points", i, g)
		}
	}
	precision := b.u8()
	b.skip(3)
	if b.err == nil && precision != 1 && precision != 2 {
		b.fail("clut precision %d, want 1 or 2", precision)
	}
	if b.err != nil {
		return nil
	}
	grid := dims[:inputs]
	count, ok := gridSize(grid, int(outputs))
	if !ok {
		b.fail("clut grid %v x %d outputs overflows", grid, outputs)
		return nil
	}
	samples := clutSamples(b, count, precision, limit)
	if r := (b.c.Pos() - b.start) % 4; r != 0 && b.err == nil && b.c.Pos()+(4-r) <= limit {
		b.skip(4 - r)
	}
	return &CLUT{
		GridPoints:     grid,
		InputChannels:  inputs,
		OutputChannels: outputs,
		Precision:      precision,
		Samples:        samples,
	}
}
