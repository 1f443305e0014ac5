package iccmax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	testCases := []struct {
		sig    Signature
		expect string
	}{
		{TypeLutAToB, "mAB"},
		{TypeCurve, "curv"},
		{TagGrayTRC, "kTRC"},
		{ColorSpaceRGB, "RGB"},
		{Signature(0x41424300), "ABC"},
		{Signature(0x00010203), "0x00010203"},
		{Signature(0), ""},
	}
	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.sig.String())
		})
	}

	assert.Equal(t, TypeLutAToB, SignatureFromString("mAB"))
	assert.Equal(t, TagAToB0, SignatureFromString("A2B0"))
	assert.Equal(t, [4]byte{'d', 'e', 's', 'c'}, TypeTextDescription.Bytes())
}

func TestColorSpaceChannels(t *testing.T) {
	testCases := []struct {
		cs     Signature
		expect int
		ok     bool
	}{
		{ColorSpaceGray, 1, true},
		{ColorSpaceRGB, 3, true},
		{ColorSpaceCMYK, 4, true},
		{SignatureFromString("7CLR"), 7, true},
		{SignatureFromString("FCLR"), 15, true},
		{ColorSpaceNChannel | 0x0020, 32, true},
		{ColorSpaceNChannel, 0, false},
		{SignatureFromString("abcd"), 0, false},
		{0, 0, false},
	}
	for _, tc := range testCases {
		n, ok := ColorSpaceChannels(tc.cs)
		assert.Equal(t, tc.expect, n, tc.cs.String())
		assert.Equal(t, tc.ok, ok, tc.cs.String())
	}
}
