package iccmax

import (
	"testing"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXYZDecoder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		x := mustDecode[*XYZ](t, icc.Type("XYZ ", icc.S15(0.9642), icc.S15(1.0), icc.S15(0.8249)))
		require.Len(t, x.Values, 1)
		assert.InDelta(t, 0.9642, x.Values[0].X, 0.0001)
		assert.InDelta(t, 1.0, x.Values[0].Y, 0.0001)
		assert.InDelta(t, 0.8249, x.Values[0].Z, 0.0001)
	})

	t.Run("MultipleValues", func(t *testing.T) {
		x := mustDecode[*XYZ](t, icc.Type("XYZ ", []int32{
			icc.S15(0.1), icc.S15(0.2), icc.S15(0.3),
			icc.S15(-0.5), icc.S15(0), icc.S15(2),
		}))
		require.Len(t, x.Values, 2)
		assert.InDelta(t, -0.5, x.Values[1].X, 0.0001)
		assert.InDelta(t, 2.0, x.Values[1].Z, 0.0001)
	})

	t.Run("Empty", func(t *testing.T) {
		requireCorrupt(t, icc.Type("XYZ "), "XYZ has no values")
	})

	t.Run("PartialValue", func(t *testing.T) {
		requireCorrupt(t, icc.Type("XYZ ", icc.S15(1), icc.S15(1)), "not a multiple of 12")
	})
}
