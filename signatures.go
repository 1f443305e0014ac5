package iccmax

import (
	"fmt"
	"strings"
)

// Signature is a four character code stored as a big-endian uint32.
type Signature uint32

// SignatureFromString builds a Signature from up to four characters, padding with spaces.
func SignatureFromString(s string) Signature {
	var b [4]byte
	copy(b[:], "    ")
	copy(b[:], s)
	return Signature(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// Bytes returns the four raw bytes of the signature.
func (s Signature) Bytes() [4]byte {
	return [4]byte{byte(s >> 24), byte(s >> 16), byte(s >> 8), byte(s)}
}

// String returns the printable code with trailing spaces and NULs removed,
// or a hex form when any byte is not printable ASCII.
func (s Signature) String() string {
	if s == 0 {
		return ""
	}
	b := s.Bytes()
	str := strings.TrimRight(string(b[:]), "\x00 ")
	for _, ch := range []byte(str) {
		if ch < 32 || ch > 126 {
			return fmt.Sprintf("0x%08X", uint32(s))
		}
	}
	return str
}

// Type signatures: the first four bytes of a tag payload.
const (
	TypeChromaticity              Signature = 0x6368726D // 'chrm'
	TypeCICP                      Signature = 0x63696370 // 'cicp'
	TypeColorantOrder             Signature = 0x636C726F // 'clro'
	TypeColorantTable             Signature = 0x636C7274 // 'clrt'
	TypeCrdInfo                   Signature = 0x63726469 // 'crdi'
	TypeCurve                     Signature = 0x63757276 // 'curv'
	TypeData                      Signature = 0x64617461 // 'data'
	TypeDateTime                  Signature = 0x6474696D // 'dtim'
	TypeDictionary                Signature = 0x64696374 // 'dict'
	TypeEmbeddedHeightImage       Signature = 0x6568696D // 'ehim'
	TypeEmbeddedNormalImage       Signature = 0x656E696D // 'enim'
	TypeFloat16Array              Signature = 0x666C3136 // 'fl16'
	TypeFloat32Array              Signature = 0x666C3332 // 'fl32'
	TypeFloat64Array              Signature = 0x666C3634 // 'fl64'
	TypeGamutBoundaryDesc         Signature = 0x67626420 // 'gbd '
	TypeLut16                     Signature = 0x6D667432 // 'mft2'
	TypeLut8                      Signature = 0x6D667431 // 'mft1'
	TypeLutAToB                   Signature = 0x6D414220 // 'mAB '
	TypeLutBToA                   Signature = 0x6D424120 // 'mBA '
	TypeMeasurement               Signature = 0x6D656173 // 'meas'
	TypeMultiLocalizedUnicode     Signature = 0x6D6C7563 // 'mluc'
	TypeMultiProcessElements      Signature = 0x6D706574 // 'mpet'
	TypeNamedColor2               Signature = 0x6E636C32 // 'ncl2'
	TypeParametricCurve           Signature = 0x70617261 // 'para'
	TypeProfileSequenceDesc       Signature = 0x70736571 // 'pseq'
	TypeProfileSequenceID         Signature = 0x70736964 // 'psid'
	TypeResponseCurveSet16        Signature = 0x72637332 // 'rcs2'
	TypeS15Fixed16Array           Signature = 0x73663332 // 'sf32'
	TypeScreening                 Signature = 0x7363726E // 'scrn'
	TypeSignature                 Signature = 0x73696720 // 'sig '
	TypeSparseMatrixArray         Signature = 0x736D6174 // 'smat'
	TypeSpectralViewingConditions Signature = 0x7376636E // 'svcn'
	TypeTagArray                  Signature = 0x74617279 // 'tary'
	TypeTagStruct                 Signature = 0x74737472 // 'tstr'
	TypeText                      Signature = 0x74657874 // 'text'
	TypeTextDescription           Signature = 0x64657363 // 'desc'
	TypeU16Fixed16Array           Signature = 0x75663332 // 'uf32'
	TypeUCRBG                     Signature = 0x62666420 // 'bfd '
	TypeUInt8Array                Signature = 0x75693038 // 'ui08'
	TypeUInt16Array               Signature = 0x75693136 // 'ui16'
	TypeUInt32Array               Signature = 0x75693332 // 'ui32'
	TypeUInt64Array               Signature = 0x75693634 // 'ui64'
	TypeUTF8Text                  Signature = 0x75746638 // 'utf8'
	TypeUTF16Text                 Signature = 0x75743136 // 'ut16'
	TypeUTF8Zip                   Signature = 0x7A757438 // 'zut8'
	TypeViewingConditions         Signature = 0x76696577 // 'view'
	TypeXYZ                       Signature = 0x58595A20 // 'XYZ '
	TypeZipXML                    Signature = 0x7A786D6C // 'zxml'
)

// Tag signatures: the names used in the tag table.
const (
	TagAToB0                      Signature = 0x41324230 // 'A2B0'
	TagAToB1                      Signature = 0x41324231 // 'A2B1'
	TagAToB2                      Signature = 0x41324232 // 'A2B2'
	TagAToB3                      Signature = 0x41324233 // 'A2B3'
	TagBToA0                      Signature = 0x42324130 // 'B2A0'
	TagBToA1                      Signature = 0x42324131 // 'B2A1'
	TagBToA2                      Signature = 0x42324132 // 'B2A2'
	TagBToA3                      Signature = 0x42324133 // 'B2A3'
	TagDToB0                      Signature = 0x44324230 // 'D2B0'
	TagDToB1                      Signature = 0x44324231 // 'D2B1'
	TagDToB2                      Signature = 0x44324232 // 'D2B2'
	TagDToB3                      Signature = 0x44324233 // 'D2B3'
	TagBToD0                      Signature = 0x42324430 // 'B2D0'
	TagBToD1                      Signature = 0x42324431 // 'B2D1'
	TagBToD2                      Signature = 0x42324432 // 'B2D2'
	TagBToD3                      Signature = 0x42324433 // 'B2D3'
	TagBlueColorant               Signature = 0x6258595A // 'bXYZ'
	TagBlueTRC                    Signature = 0x62545243 // 'bTRC'
	TagBrdfColorimetricParameter0 Signature = 0x62637030 // 'bcp0'
	TagCalibrationDateTime        Signature = 0x63616C74 // 'calt'
	TagCharTarget                 Signature = 0x74617267 // 'targ'
	TagChromaticAdaptation        Signature = 0x63686164 // 'chad'
	TagChromaticity               Signature = 0x6368726D // 'chrm'
	TagCICP                       Signature = 0x63696370 // 'cicp'
	TagColorantOrder              Signature = 0x636C726F // 'clro'
	TagColorantTable              Signature = 0x636C7274 // 'clrt'
	TagColorantTableOut           Signature = 0x636C6F74 // 'clot'
	TagColorEncodingParams        Signature = 0x63657074 // 'cept'
	TagColorimetricIntentImage    Signature = 0x63696973 // 'ciis'
	TagCopyright                  Signature = 0x63707274 // 'cprt'
	TagCustomToStandardPCC        Signature = 0x63327370 // 'c2sp'
	TagDeviceMfgDesc              Signature = 0x646D6E64 // 'dmnd'
	TagDeviceModelDesc            Signature = 0x646D6464 // 'dmdd'
	TagGamut                      Signature = 0x67616D74 // 'gamt'
	TagGamutBoundaryDescription0  Signature = 0x67626430 // 'gbd0'
	TagGrayTRC                    Signature = 0x6B545243 // 'kTRC'
	TagGreenColorant              Signature = 0x6758595A // 'gXYZ'
	TagGreenTRC                   Signature = 0x67545243 // 'gTRC'
	TagLuminance                  Signature = 0x6C756D69 // 'lumi'
	TagMaterialDefaultValues      Signature = 0x6D647620 // 'mdv '
	TagMeasurement                Signature = 0x6D656173 // 'meas'
	TagMediaBlackPoint            Signature = 0x626B7074 // 'bkpt'
	TagMediaWhitePoint            Signature = 0x77747074 // 'wtpt'
	TagMetadata                   Signature = 0x6D657461 // 'meta'
	TagNamedColor2                Signature = 0x6E636C32 // 'ncl2'
	TagOutputResponse             Signature = 0x72657370 // 'resp'
	TagPerceptualRenderingIntent  Signature = 0x72696730 // 'rig0'
	TagPreview0                   Signature = 0x70726530 // 'pre0'
	TagPreview1                   Signature = 0x70726531 // 'pre1'
	TagPreview2                   Signature = 0x70726532 // 'pre2'
	TagProfileDescription         Signature = 0x64657363 // 'desc'
	TagProfileSequenceDesc        Signature = 0x70736571 // 'pseq'
	TagProfileSequenceID          Signature = 0x70736964 // 'psid'
	TagRedColorant                Signature = 0x7258595A // 'rXYZ'
	TagRedTRC                     Signature = 0x72545243 // 'rTRC'
	TagSaturationRenderingIntent  Signature = 0x72696732 // 'rig2'
	TagScreening                  Signature = 0x7363726E // 'scrn'
	TagSpectralViewingConditions  Signature = 0x7376636E // 'svcn'
	TagSpectralWhitePoint         Signature = 0x73777074 // 'swpt'
	TagStandardToCustomPCC        Signature = 0x73326370 // 's2cp'
	TagSurfaceMap                 Signature = 0x736D6170 // 'smap'
	TagTechnology                 Signature = 0x74656368 // 'tech'
	TagUCRBG                      Signature = 0x62666420 // 'bfd '
	TagViewingCondDesc            Signature = 0x76756564 // 'vued'
	TagViewingConditions          Signature = 0x76696577 // 'view'
)

// Profile / device classes.
const (
	ClassInput           Signature = 0x73636E72 // 'scnr'
	ClassDisplay         Signature = 0x6D6E7472 // 'mntr'
	ClassOutput          Signature = 0x70727472 // 'prtr'
	ClassLink            Signature = 0x6C696E6B // 'link'
	ClassAbstract        Signature = 0x61627374 // 'abst'
	ClassColorSpace      Signature = 0x73706163 // 'spac'
	ClassNamedColor      Signature = 0x6E6D636C // 'nmcl'
	ClassColorEncoding   Signature = 0x63656E63 // 'cenc'
	ClassMaterialIdent   Signature = 0x6D696420 // 'mid '
	ClassMaterialLink    Signature = 0x6D6C6E6B // 'mlnk'
	ClassMaterialVisible Signature = 0x6D766973 // 'mvis'
)

// Colour space signatures.
const (
	ColorSpaceXYZ   Signature = 0x58595A20 // 'XYZ '
	ColorSpaceLab   Signature = 0x4C616220 // 'Lab '
	ColorSpaceLuv   Signature = 0x4C757620 // 'Luv '
	ColorSpaceYCbCr Signature = 0x59436272 // 'YCbr'
	ColorSpaceYxy   Signature = 0x59787920 // 'Yxy '
	ColorSpaceRGB   Signature = 0x52474220 // 'RGB '
	ColorSpaceGray  Signature = 0x47524159 // 'GRAY'
	ColorSpaceHSV   Signature = 0x48535620 // 'HSV '
	ColorSpaceHLS   Signature = 0x484C5320 // 'HLS '
	ColorSpaceCMYK  Signature = 0x434D594B // 'CMYK'
	ColorSpaceCMY   Signature = 0x434D5920 // 'CMY '
	// ColorSpaceNChannel is the iccMAX 'nc' prefix; the low 16 bits carry the channel count
	ColorSpaceNChannel Signature = 0x6E630000
)

var colorSpaceChannels = map[Signature]int{
	ColorSpaceXYZ:   3,
	ColorSpaceLab:   3,
	ColorSpaceLuv:   3,
	ColorSpaceYCbCr: 3,
	ColorSpaceYxy:   3,
	ColorSpaceRGB:   3,
	ColorSpaceGray:  1,
	ColorSpaceHSV:   3,
	ColorSpaceHLS:   3,
	ColorSpaceCMYK:  4,
	ColorSpaceCMY:   3,
	0x32434C52:      2,  // '2CLR'
	0x33434C52:      3,  // '3CLR'
	0x34434C52:      4,  // '4CLR'
	0x35434C52:      5,  // '5CLR'
	0x36434C52:      6,  // '6CLR'
	0x37434C52:      7,  // '7CLR'
	0x38434C52:      8,  // '8CLR'
	0x39434C52:      9,  // '9CLR'
	0x41434C52:      10, // 'ACLR'
	0x42434C52:      11, // 'BCLR'
	0x43434C52:      12, // 'CCLR'
	0x44434C52:      13, // 'DCLR'
	0x45434C52:      14, // 'ECLR'
	0x46434C52:      15, // 'FCLR'
}

// ColorSpaceChannels returns the number of channels of a colour space signature.
// ok is false for signatures with no fixed channel count (including zero).
func ColorSpaceChannels(cs Signature) (n int, ok bool) {
	if n, ok = colorSpaceChannels[cs]; ok {
		return n, true
	}
	if cs&0xFFFF0000 == ColorSpaceNChannel && cs&0xFFFF != 0 {
		return int(cs & 0xFFFF), true
	}
	return 0, false
}
