package iccmax

import (
	"testing"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stage(sig string, in, out uint16, body ...any) []byte {
	return icc.Write(icc.Sig(sig), uint32(0), in, out, icc.Write(body...))
}

func mpet(in, out uint16, positions []icc.Position, body []byte) []byte {
	return icc.Type("mpet", in, out, uint32(len(positions)), icc.Positions(positions...), body)
}

func TestMultiProcessElementsDecoder(t *testing.T) {
	t.Run("Chained", func(t *testing.T) {
		curves := stage("cvst", 3, 3, make([]uint32, 6))
		matrix := stage("matf", 3, 1, make([]float32, 12))
		pos, body := icc.Layout(16+8*2, curves, matrix)
		m := mustDecode[*MultiProcessElements](t, mpet(3, 1, pos, body))
		assert.Equal(t, uint16(3), m.InputChannels)
		assert.Equal(t, uint16(1), m.OutputChannels)
		require.Len(t, m.Stages, 2)
		assert.Equal(t, "cvst", m.Stages[0].TypeSig.String())
		assert.Equal(t, uint16(3), m.Stages[0].OutputChannels)
		assert.Equal(t, "matf", m.Stages[1].TypeSig.String())
		assert.Equal(t, matrix, m.Stages[1].Raw)
	})

	t.Run("SharedStage", func(t *testing.T) {
		curves := stage("cvst", 3, 3, make([]uint32, 6))
		pos, body := icc.Layout(16+8*2, curves)
		m := mustDecode[*MultiProcessElements](t, mpet(3, 3, []icc.Position{pos[0], pos[0]}, body))
		require.Len(t, m.Stages, 2)
		assert.Equal(t, m.Stages[0].Raw, m.Stages[1].Raw)
		assert.Equal(t, curves, m.Stages[1].Raw)
	})

	t.Run("ChannelsDoNotChain", func(t *testing.T) {
		pos, body := icc.Layout(16+8*2, stage("matf", 3, 1), stage("cvst", 3, 3))
		ce := requireCorrupt(t, mpet(3, 3, pos, body), "processing element 1 takes 3 channels, previous stage gives 1")
		assert.Equal(t, int64(pos[1].Offset), ce.Offset)
	})

	t.Run("FirstStageInputs", func(t *testing.T) {
		pos, body := icc.Layout(16+8, stage("cvst", 4, 4))
		requireCorrupt(t, mpet(3, 4, pos, body), "processing element 0 takes 4 channels, previous stage gives 3")
	})

	t.Run("LastStageOutputs", func(t *testing.T) {
		pos, body := icc.Layout(16+8, stage("cvst", 3, 3))
		requireCorrupt(t, mpet(3, 1, pos, body), "last processing element gives 3 channels, tag declares 1")
	})

	t.Run("NoElements", func(t *testing.T) {
		requireCorrupt(t, mpet(3, 3, nil, nil), "no processing elements")
	})

	t.Run("ElementShorterThanHeader", func(t *testing.T) {
		payload := mpet(3, 3, []icc.Position{{Offset: 24, Size: 8}}, make([]byte, 8))
		requireCorrupt(t, payload, "processing element 0 of 8 bytes is shorter than its header")
	})

	t.Run("Unaligned", func(t *testing.T) {
		payload := mpet(3, 3, []icc.Position{{Offset: 26, Size: 12}}, icc.Write([]byte{0, 0}, stage("cvst", 3, 3), []byte{0, 0}))
		requireCorrupt(t, payload, "processing element offset 26 is not 4-byte aligned")
	})

	t.Run("InsidePositionTable", func(t *testing.T) {
		payload := mpet(3, 3, []icc.Position{{Offset: 16, Size: 12}}, stage("cvst", 3, 3))
		requireCorrupt(t, payload, "lies inside the 24 byte header")
	})

	t.Run("TooManyElements", func(t *testing.T) {
		requireCorrupt(t, icc.Type("mpet", uint16(1), uint16(1), uint32(4), icc.Positions(icc.Position{})), "4 processing elements")
	})
}
