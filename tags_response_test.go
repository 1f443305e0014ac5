package iccmax

import (
	"testing"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// response builds one measurement of a single channel response set.
func response(unit string, points ...uint16) []byte {
	var curve []byte
	for i, p := range points {
		curve = icc.Write(curve, p, uint16(0), icc.S15(float64(i)/2))
	}
	return icc.Write(icc.Sig(unit), uint32(len(points)), icc.S15(0.9), icc.S15(1.0), icc.S15(0.8), curve)
}

func TestResponseCurveSet16Decoder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		pos, body := icc.Layout(12+8, response("StaA", 0, 0x8000, 0xFFFF), response("StaT", 0))
		payload := icc.Type("rcs2", uint16(1), uint16(2), pos[0].Offset, pos[1].Offset, body)
		r := mustDecode[*ResponseCurveSet16](t, payload)
		assert.Equal(t, uint16(1), r.Channels)
		require.Len(t, r.Measurements, 2)
		m := r.Measurements[0]
		assert.Equal(t, "StaA", m.Unit.String())
		assert.InDelta(t, 0.9, m.MaxColorant[0].X, 0.0001)
		require.Len(t, m.Responses, 1)
		assert.Equal(t, []Response16Number{
			{Device: 0, Measurement: 0},
			{Device: 0x8000, Measurement: 0.5},
			{Device: 0xFFFF, Measurement: 1},
		}, m.Responses[0])
		assert.Equal(t, "StaT", r.Measurements[1].Unit.String())
		assert.Len(t, r.Measurements[1].Responses[0], 1)
	})

	t.Run("OffsetInsideTable", func(t *testing.T) {
		payload := icc.Type("rcs2", uint16(1), uint16(1), uint32(8), response("StaA", 0))
		requireCorrupt(t, payload, "measurement offset 8 lies inside the 16 byte header")
	})

	t.Run("OffsetAtEnd", func(t *testing.T) {
		payload := icc.Type("rcs2", uint16(1), uint16(1), uint32(40), response("StaA"), uint32(0))
		requireCorrupt(t, payload, "at or past the end of the tag")
	})

	t.Run("TruncatedCurve", func(t *testing.T) {
		m := response("StaA", 0, 1)
		payload := icc.Type("rcs2", uint16(1), uint16(1), uint32(16), m[:len(m)-4])
		requireCorrupt(t, payload, "2 response values")
	})
}
