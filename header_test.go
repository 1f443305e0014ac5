package iccmax

import (
	"encoding/binary"
	"testing"
	"time"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		data := icc.New().Bytes()
		h, err := newDecoder(nil, nil).parseHeader(cursorOver(data))
		require.NoError(t, err)
		assert.Equal(t, uint32(len(data)), h.ProfileSize)
		assert.Equal(t, "test", h.CMMType.String())
		assert.Equal(t, uint32(0x04400000), h.VersionRaw)
		assert.Equal(t, Version{Major: 4, Minor: 4}, h.Version)
		assert.Equal(t, ClassDisplay, h.DeviceClass)
		assert.Equal(t, ColorSpaceRGB, h.ColorSpace)
		assert.Equal(t, ColorSpaceXYZ, h.PCS)
		assert.Equal(t, "2024-05-17T10:30:15Z", h.Created.Format(time.RFC3339))
		assert.Equal(t, MagicNumber, h.Magic)
		assert.InDelta(t, 0.9642, h.Illuminant.X, 0.0001)
		assert.InDelta(t, 0.8249, h.Illuminant.Z, 0.0001)
		assert.Equal(t, "test", h.Creator.String())
		assert.Equal(t, [16]byte{}, h.ProfileID)
		assert.Zero(t, h.SpectralPCS)
	})

	t.Run("ICC2Fields", func(t *testing.T) {
		p := icc.New()
		p.Version = 0x05000000
		data := p.Bytes()
		binary.BigEndian.PutUint32(data[100:], icc.Sig("rs\x00\x24"))
		copy(data[104:], icc.Write(half(380), half(780), uint16(41)))
		binary.BigEndian.PutUint32(data[116:], icc.Sig("mc\x00\x06"))
		binary.BigEndian.PutUint32(data[120:], icc.Sig("sub1"))
		h, err := newDecoder(nil, nil).parseHeader(cursorOver(data))
		require.NoError(t, err)
		assert.True(t, h.Version.IsICC2())
		assert.Equal(t, Signature(0x72730024), h.SpectralPCS)
		assert.Equal(t, SpectralRange{Start: 380, End: 780, Steps: 41}, h.SpectralRange)
		assert.Equal(t, SpectralRange{}, h.BiSpectralRange)
		assert.Equal(t, Signature(0x6D630006), h.MCS)
		assert.Equal(t, "sub1", h.DeviceSubClass.String())
		ctx := h.Context()
		assert.Equal(t, h.SpectralPCS, ctx.SpectralPCS)
		assert.Equal(t, h.Version, ctx.Version)
	})

	t.Run("ShorterThanHeader", func(t *testing.T) {
		_, err := newDecoder(nil, nil).parseHeader(cursorOver(make([]byte, 127)))
		require.ErrorIs(t, err, ErrCorrupt)
		var ce *CorruptionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "header", ce.Structure)
		assert.Equal(t, "127 bytes is shorter than the 128 byte header", ce.Reason)
	})

	t.Run("BadMagic", func(t *testing.T) {
		data := icc.New().Bytes()
		copy(data[36:], "xxxx")
		_, err := newDecoder(nil, nil).parseHeader(cursorOver(data))
		var ce *CorruptionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, int64(36), ce.Offset)
		assert.Contains(t, ce.Reason, `"xxxx"`)
	})

	t.Run("DeclaredSizeTooSmall", func(t *testing.T) {
		data := icc.New().Bytes()
		binary.BigEndian.PutUint32(data, 128)
		_, err := newDecoder(nil, nil).parseHeader(cursorOver(data))
		require.ErrorIs(t, err, ErrCorrupt)
		assert.Contains(t, err.Error(), "too small for a header and tag count")
	})

	t.Run("DeclaredSizeTooLarge", func(t *testing.T) {
		data := icc.New().Bytes()
		binary.BigEndian.PutUint32(data, uint32(len(data)+1))
		_, err := newDecoder(nil, nil).parseHeader(cursorOver(data))
		require.ErrorIs(t, err, ErrCorrupt)
		assert.Contains(t, err.Error(), "exceeds the 132 bytes supplied")
	})
}

func TestVersion(t *testing.T) {
	testCases := []struct {
		raw    uint32
		expect string
		icc2   bool
	}{
		{0x02100000, "2.1.0", false},
		{0x02400000, "2.4.0", false},
		{0x04300000, "4.3.0", false},
		{0x04420000, "4.4.2", false},
		{0x05000000, "5.0.0", true},
		{0x05100000, "5.1.0", true},
	}
	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			v := versionFromRaw(tc.raw)
			assert.Equal(t, tc.expect, v.String())
			assert.Equal(t, tc.icc2, v.IsICC2())
		})
	}
}
