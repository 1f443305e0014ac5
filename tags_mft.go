package iccmax

// Lut8 is a lut8Type ('mft1') payload.
type Lut8 struct {
	InputChannels  uint8
	OutputChannels uint8
	GridPoints     uint8 // same for all input dims
	Matrix         [9]float64
	InputTables    [][]uint8 // 256 entries per input channel
	CLUT           *CLUT     // nil when GridPoints == 0
	OutputTables   [][]uint8 // 256 entries per output channel
}

func (*Lut8) TypeSignature() Signature { return TypeLut8 }
func (*Lut8) isTagData()               {}

// Lut16 is a lut16Type ('mft2') payload.
type Lut16 struct {
	InputChannels  uint8
	OutputChannels uint8
	GridPoints     uint8 // same for all input dims
	Matrix         [9]float64
	InputEntries   uint16
	OutputEntries  uint16
	InputTables    [][]uint16
	CLUT           *CLUT // nil when GridPoints == 0
	OutputTables   [][]uint16
}

func (*Lut16) TypeSignature() Signature { return TypeLut16 }
func (*Lut16) isTagData()               {}

const maxLutChannels = 15

// lutHeader reads and validates the fields common to mft1 and mft2.
func lutHeader(b *block) (inCh, outCh, grid uint8, matrix [9]float64) {
	inCh, outCh, grid = b.u8(), b.u8(), b.u8()
	b.skip(1)
	matrix = readMatrix3x3(b)
	if b.err != nil {
		return
	}
	switch {
	case inCh == 0 || inCh > maxLutChannels:
		b.fail("%d input channels", inCh)
	case outCh == 0 || outCh > maxLutChannels:
		b.fail("%d output channels", outCh)
	case grid == 1:
		b.fail("clut with a single grid point")
	case inCh != 3 && matrix != identity3x3:
		b.fail("non-identity matrix with %d input channels", inCh)
	}
	return
}

// lutCLUT reads the uniform grid CLUT of mft1/mft2; grid 0 means no CLUT.
func lutCLUT(b *block, inCh, outCh, grid, precision uint8) *CLUT {
	if b.err != nil || grid == 0 {
		return nil
	}
	points, ok := ipow(uint64(grid), int(inCh))
	if !ok || points*uint64(outCh) > uint64(b.left()) {
		b.fail("clut of %d^%d x %d samples exceeds the %d bytes left", grid, inCh, outCh, b.left())
		return nil
	}
	gridPoints := make([]uint8, inCh)
	for i := range gridPoints {
		gridPoints[i] = grid
	}
	return &CLUT{
		GridPoints:     gridPoints,
		InputChannels:  inCh,
		OutputChannels: outCh,
		Precision:      precision,
		Samples:        clutSamples(b, points*uint64(outCh), precision, b.end()),
	}
}

func lut8Decoder(b *block) (TagData, error) {
	inCh, outCh, grid, matrix := lutHeader(b)
	inputTables := make([][]uint8, b.count(uint64(inCh), 256, "input tables"))
	for i := range inputTables {
		inputTables[i] = b.raw(256)
	}
	clut := lutCLUT(b, inCh, outCh, grid, 1)
	outputTables := make([][]uint8, b.count(uint64(outCh), 256, "output tables"))
	for i := range outputTables {
		outputTables[i] = b.raw(256)
	}
	b.padding()
	return b.result(&Lut8{
		InputChannels:  inCh,
		OutputChannels: outCh,
		GridPoints:     grid,
		Matrix:         matrix,
		InputTables:    inputTables,
		CLUT:           clut,
		OutputTables:   outputTables,
	})
}

func lut16Decoder(b *block) (TagData, error) {
	inCh, outCh, grid, matrix := lutHeader(b)
	inEntries, outEntries := b.u16(), b.u16()
	if b.err == nil && (inEntries < 2 || inEntries > 4096 || outEntries < 2 || outEntries > 4096) {
		b.fail("table entries %d/%d outside 2..4096", inEntries, outEntries)
	}
	inputTables := lut16Tables(b, inCh, inEntries, "input")
	clut := lutCLUT(b, inCh, outCh, grid, 2)
	outputTables := lut16Tables(b, outCh, outEntries, "output")
	b.padding()
	return b.result(&Lut16{
		InputChannels:  inCh,
		OutputChannels: outCh,
		GridPoints:     grid,
		Matrix:         matrix,
		InputEntries:   inEntries,
		OutputEntries:  outEntries,
		InputTables:    inputTables,
		CLUT:           clut,
		OutputTables:   outputTables,
	})
}

func lut16Tables(b *block, channels uint8, entries uint16, what string) [][]uint16 {
	tables := make([][]uint16, b.count(uint64(channels)*uint64(entries), 2, what+" table entries")/max(int(entries), 1))
	for i := range tables {
		table := make([]uint16, entries)
		for j := range table {
			table[j] = b.u16()
		}
		tables[i] = table
	}
	return tables
}
