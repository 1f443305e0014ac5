package iccmax

import (
	"testing"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identityMatrix = []int32{icc.S15(1), 0, 0, 0, icc.S15(1), 0, 0, 0, icc.S15(1)}

func ramp8() []byte {
	table := make([]byte, 256)
	for i := range table {
		table[i] = byte(i)
	}
	return table
}

func TestLut8Decoder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// 1 input, 2 outputs, 2 grid points
		payload := icc.Type("mft1", []uint8{1, 2, 2, 0}, identityMatrix,
			ramp8(),
			[]uint8{0x00, 0x10, 0xF0, 0xFF},
			ramp8(), ramp8())
		l := mustDecode[*Lut8](t, payload)
		assert.Equal(t, uint8(1), l.InputChannels)
		assert.Equal(t, uint8(2), l.OutputChannels)
		assert.Equal(t, uint8(2), l.GridPoints)
		assert.Equal(t, identity3x3, l.Matrix)
		require.Len(t, l.InputTables, 1)
		assert.Equal(t, uint8(200), l.InputTables[0][200])
		require.NotNil(t, l.CLUT)
		assert.Equal(t, []uint8{2}, l.CLUT.GridPoints)
		assert.Equal(t, uint8(1), l.CLUT.Precision)
		assert.Equal(t, []uint16{0x00, 0x10, 0xF0, 0xFF}, l.CLUT.Samples)
		assert.Len(t, l.OutputTables, 2)
	})

	t.Run("NoCLUT", func(t *testing.T) {
		payload := icc.Type("mft1", []uint8{1, 1, 0, 0}, identityMatrix, ramp8(), ramp8())
		l := mustDecode[*Lut8](t, payload)
		assert.Nil(t, l.CLUT)
		assert.Len(t, l.InputTables, 1)
		assert.Len(t, l.OutputTables, 1)
	})

	t.Run("TrailingPadding", func(t *testing.T) {
		// 3 inputs, 1 output, 3 grid points: 27 clut bytes, padded to a multiple of 4
		payload := icc.Type("mft1", []uint8{3, 1, 3, 0}, identityMatrix,
			ramp8(), ramp8(), ramp8(), make([]byte, 27), ramp8(), []byte{0})
		l := mustDecode[*Lut8](t, payload)
		assert.Len(t, l.CLUT.Samples, 27)
	})

	t.Run("MatrixWithThreeInputs", func(t *testing.T) {
		matrix := []int32{icc.S15(2), 0, 0, 0, icc.S15(1), 0, 0, 0, icc.S15(1)}
		payload := icc.Type("mft1", []uint8{3, 1, 0, 0}, matrix, ramp8(), ramp8(), ramp8(), ramp8())
		l := mustDecode[*Lut8](t, payload)
		assert.InDelta(t, 2.0, l.Matrix[0], 0.0001)
	})

	t.Run("MatrixWithoutThreeInputs", func(t *testing.T) {
		matrix := []int32{icc.S15(2), 0, 0, 0, icc.S15(1), 0, 0, 0, icc.S15(1)}
		payload := icc.Type("mft1", []uint8{1, 1, 0, 0}, matrix, ramp8(), ramp8())
		requireCorrupt(t, payload, "non-identity matrix with 1 input channels")
	})

	t.Run("SingleGridPoint", func(t *testing.T) {
		payload := icc.Type("mft1", []uint8{1, 1, 1, 0}, identityMatrix, ramp8(), []byte{0}, ramp8())
		requireCorrupt(t, payload, "single grid point")
	})

	t.Run("ZeroChannels", func(t *testing.T) {
		requireCorrupt(t, icc.Type("mft1", []uint8{0, 1, 0, 0}, identityMatrix, ramp8()), "0 input channels")
		requireCorrupt(t, icc.Type("mft1", []uint8{1, 16, 0, 0}, identityMatrix, ramp8()), "16 output channels")
	})

	t.Run("TruncatedTables", func(t *testing.T) {
		payload := icc.Type("mft1", []uint8{2, 1, 0, 0}, identityMatrix, ramp8())
		requireCorrupt(t, payload, "2 input tables")
	})

	t.Run("TruncatedCLUT", func(t *testing.T) {
		payload := icc.Type("mft1", []uint8{3, 3, 17, 0}, identityMatrix, ramp8(), ramp8(), ramp8())
		requireCorrupt(t, payload, "clut of 17^3 x 3 samples")
	})
}

func TestLut16Decoder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		payload := icc.Type("mft2", []uint8{1, 1, 2, 0}, identityMatrix,
			uint16(4), uint16(3),
			[]uint16{0, 21845, 43690, 65535},
			[]uint16{0x8000, 0xFFFF},
			[]uint16{65535, 32768, 0}, uint16(0))
		l := mustDecode[*Lut16](t, payload)
		assert.Equal(t, uint8(1), l.InputChannels)
		assert.Equal(t, uint8(1), l.OutputChannels)
		assert.Equal(t, uint8(2), l.GridPoints)
		assert.Equal(t, uint16(4), l.InputEntries)
		assert.Equal(t, uint16(3), l.OutputEntries)
		assert.Equal(t, [][]uint16{{0, 21845, 43690, 65535}}, l.InputTables)
		require.NotNil(t, l.CLUT)
		assert.Equal(t, uint8(2), l.CLUT.Precision)
		assert.Equal(t, []uint16{0x8000, 0xFFFF}, l.CLUT.Samples)
		assert.Equal(t, [][]uint16{{65535, 32768, 0}}, l.OutputTables)
	})

	t.Run("NoCLUT", func(t *testing.T) {
		payload := icc.Type("mft2", []uint8{2, 2, 0, 0}, identityMatrix,
			uint16(2), uint16(2),
			[]uint16{0, 0xFFFF, 0, 0xFFFF},
			[]uint16{0xFFFF, 0, 0xFFFF, 0})
		l := mustDecode[*Lut16](t, payload)
		assert.Nil(t, l.CLUT)
		assert.Equal(t, [][]uint16{{0, 0xFFFF}, {0, 0xFFFF}}, l.InputTables)
		assert.Equal(t, [][]uint16{{0xFFFF, 0}, {0xFFFF, 0}}, l.OutputTables)
	})

	t.Run("TooFewEntries", func(t *testing.T) {
		payload := icc.Type("mft2", []uint8{1, 1, 0, 0}, identityMatrix, uint16(1), uint16(2), uint16(0), []uint16{0, 0})
		requireCorrupt(t, payload, "outside 2..4096")
	})

	t.Run("TooManyEntries", func(t *testing.T) {
		payload := icc.Type("mft2", []uint8{1, 1, 0, 0}, identityMatrix, uint16(2), uint16(4097))
		requireCorrupt(t, payload, "outside 2..4096")
	})

	t.Run("TruncatedOutputTables", func(t *testing.T) {
		payload := icc.Type("mft2", []uint8{1, 1, 0, 0}, identityMatrix, uint16(2), uint16(2), []uint16{0, 1}, uint16(7))
		requireCorrupt(t, payload, "output table entries")
	})

	t.Run("MatrixWithoutThreeInputs", func(t *testing.T) {
		matrix := []int32{icc.S15(1), icc.S15(0.5), 0, 0, icc.S15(1), 0, 0, 0, icc.S15(1)}
		payload := icc.Type("mft2", []uint8{2, 2, 0, 0}, matrix, uint16(2), uint16(2), make([]uint16, 8))
		requireCorrupt(t, payload, "non-identity matrix with 2 input channels")
	})
}
