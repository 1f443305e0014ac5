package iccmax

import "github.com/go-andiamo/iccmax/internal/cursor"

// Chromaticity is a chromaticityType ('chrm') payload.
type Chromaticity struct {
	ColorantType uint16       // 0 = custom, 1..4 = ITU-R BT.709, SMPTE RP145, EBU Tech 3213, P22
	Coordinates  [][2]float64 // x, y per channel
}

func (*Chromaticity) TypeSignature() Signature { return TypeChromaticity }
func (*Chromaticity) isTagData()               {}

// ColorantOrder is a colorantOrderType ('clro') payload.
type ColorantOrder struct {
	Order []uint8
}

func (*ColorantOrder) TypeSignature() Signature { return TypeColorantOrder }
func (*ColorantOrder) isTagData()               {}

// ColorantTable is a colorantTableType ('clrt') payload.
type ColorantTable struct {
	Colorants []Colorant
}

func (*ColorantTable) TypeSignature() Signature { return TypeColorantTable }
func (*ColorantTable) isTagData()               {}

type Colorant struct {
	Name string
	PCS  [3]uint16
}

// NamedColor2 is a namedColor2Type ('ncl2') payload.
type NamedColor2 struct {
	VendorFlags uint32
	Prefix      string
	Suffix      string
	// DeviceCoordinates is the number of device values per colour: zero or
	// the channel count of the profile colour space
	DeviceCoordinates uint32
	Colors            []NamedColor
}

func (*NamedColor2) TypeSignature() Signature { return TypeNamedColor2 }
func (*NamedColor2) isTagData()               {}

type NamedColor struct {
	Name   string
	PCS    [3]uint16
	Device []uint16
}

// CICP is a cicpType ('cicp') payload (ITU-T H.273 coding-independent code points).
type CICP struct {
	ColorPrimaries          uint8
	TransferCharacteristics uint8
	MatrixCoefficients      uint8
	VideoFullRange          uint8
}

func (*CICP) TypeSignature() Signature { return TypeCICP }
func (*CICP) isTagData()               {}

// DateTime is a dateTimeType ('dtim') payload.
type DateTime struct {
	Value DateTimeNumber
}

func (*DateTime) TypeSignature() Signature { return TypeDateTime }
func (*DateTime) isTagData()               {}

// Screening is a screeningType ('scrn') payload.
type Screening struct {
	Flags    uint32
	Channels []ScreeningChannel
}

func (*Screening) TypeSignature() Signature { return TypeScreening }
func (*Screening) isTagData()               {}

type ScreeningChannel struct {
	Frequency float64 // lines per inch
	Angle     float64 // degrees
	SpotShape uint32
}

// UCRBG is a v2 ucrbgType ('bfd ') payload.
type UCRBG struct {
	UCR         []uint16
	BG          []uint16
	Description string
}

func (*UCRBG) TypeSignature() Signature { return TypeUCRBG }
func (*UCRBG) isTagData()               {}

// CrdInfo is a v2 crdInfoType ('crdi') payload.
type CrdInfo struct {
	ProductName string
	// RenderingIntentNames holds the CRD names for intents 0..3
	RenderingIntentNames [4]string
}

func (*CrdInfo) TypeSignature() Signature { return TypeCrdInfo }
func (*CrdInfo) isTagData()               {}

const (
	ImageEncodingPNG  uint32 = 0
	ImageEncodingTIFF uint32 = 1
)

// EmbeddedHeightImage is an embeddedHeightImageType ('ehim') payload.
type EmbeddedHeightImage struct {
	Seamless  bool
	Encoding  uint32 // ImageEncodingPNG or ImageEncodingTIFF
	MinMetres float32
	MaxMetres float32
	Image     []byte
}

func (*EmbeddedHeightImage) TypeSignature() Signature { return TypeEmbeddedHeightImage }
func (*EmbeddedHeightImage) isTagData()               {}

// EmbeddedNormalImage is an embeddedNormalImageType ('enim') payload.
type EmbeddedNormalImage struct {
	Seamless bool
	Encoding uint32
	Image    []byte
}

func (*EmbeddedNormalImage) TypeSignature() Signature { return TypeEmbeddedNormalImage }
func (*EmbeddedNormalImage) isTagData()               {}

// chromaticityColorants is the channel count of each predefined colorant type.
var chromaticityColorants = map[uint16]uint16{1: 3, 2: 3, 3: 3, 4: 3}

func chromaticityDecoder(b *block) (TagData, error) {
	channels, colorantType := b.u16(), b.u16()
	if b.err == nil {
		want, known := chromaticityColorants[colorantType]
		switch {
		case colorantType != 0 && !known:
			b.fail("unknown colorant type %d", colorantType)
		case known && channels != want:
			b.fail("colorant type %d has %d channels, want %d", colorantType, channels, want)
		}
	}
	coords := make([][2]float64, b.count(uint64(channels), 8, "chromaticity coordinates"))
	for i := range coords {
		coords[i] = [2]float64{b.u16f16(), b.u16f16()}
	}
	return b.result(&Chromaticity{ColorantType: colorantType, Coordinates: coords})
}

func colorantOrderDecoder(b *block) (TagData, error) {
	n := b.count(uint64(b.u32()), 1, "colorants")
	order := b.raw(int64(n))
	b.padding()
	return b.result(&ColorantOrder{Order: order})
}

func colorantTableDecoder(b *block) (TagData, error) {
	colorants := make([]Colorant, b.count(uint64(b.u32()), 38, "colorants"))
	for i := range colorants {
		colorants[i] = Colorant{
			Name: b.text(32, cursor.ASCII),
			PCS:  [3]uint16{b.u16(), b.u16(), b.u16()},
		}
	}
	b.padding()
	return b.result(&ColorantTable{Colorants: colorants})
}

func namedColor2Decoder(b *block) (TagData, error) {
	result := &NamedColor2{VendorFlags: b.u32()}
	n := b.u32()
	result.DeviceCoordinates = b.u32()
	result.Prefix = b.text(32, cursor.ASCII)
	result.Suffix = b.text(32, cursor.ASCII)
	if b.err == nil && result.DeviceCoordinates != 0 {
		if want, ok := ColorSpaceChannels(b.d.header.ColorSpace); ok && result.DeviceCoordinates != uint32(want) {
			b.fail("%d device coordinates, colour space %q has %d channels", result.DeviceCoordinates, b.d.header.ColorSpace, want)
		}
	}
	width := 38 + 2*int64(result.DeviceCoordinates)
	result.Colors = make([]NamedColor, b.count(uint64(n), width, "named colours"))
	for i := range result.Colors {
		c := NamedColor{
			Name:   b.text(32, cursor.ASCII),
			PCS:    [3]uint16{b.u16(), b.u16(), b.u16()},
			Device: make([]uint16, result.DeviceCoordinates),
		}
		for j := range c.Device {
			c.Device[j] = b.u16()
		}
		result.Colors[i] = c
	}
	b.padding()
	return b.result(result)
}

func cicpDecoder(b *block) (TagData, error) {
	return b.result(&CICP{
		ColorPrimaries:          b.u8(),
		TransferCharacteristics: b.u8(),
		MatrixCoefficients:      b.u8(),
		VideoFullRange:          b.u8(),
	})
}

func dateTimeDecoder(b *block) (TagData, error) {
	return b.result(&DateTime{Value: b.dateTime()})
}

func screeningDecoder(b *block) (TagData, error) {
	result := &Screening{Flags: b.u32()}
	result.Channels = make([]ScreeningChannel, b.count(uint64(b.u32()), 12, "screening channels"))
	for i := range result.Channels {
		result.Channels[i] = ScreeningChannel{
			Frequency: b.s15f16(),
			Angle:     b.s15f16(),
			SpotShape: b.u32(),
		}
	}
	return b.result(result)
}

func ucrbgDecoder(b *block) (TagData, error) {
	result := &UCRBG{}
	result.UCR = uint16Samples(b, "UCR values")
	result.BG = uint16Samples(b, "BG values")
	result.Description = b.text(b.left(), cursor.ASCII)
	return b.result(result)
}

func uint16Samples(b *block, what string) []uint16 {
	values := make([]uint16, b.count(uint64(b.u32()), 2, what))
	for i := range values {
		values[i] = b.u16()
	}
	return values
}

func crdInfoDecoder(b *block) (TagData, error) {
	result := &CrdInfo{ProductName: countedASCII(b, "product name")}
	for i := range result.RenderingIntentNames {
		result.RenderingIntentNames[i] = countedASCII(b, "CRD name")
	}
	b.seekEnd()
	return b.result(result)
}

func countedASCII(b *block, what string) string {
	n := b.count(uint64(b.u32()), 1, what+" bytes")
	return b.text(int64(n), cursor.ASCII)
}

func imageFlags(b *block) (seamless bool, encoding uint32) {
	flag, encoding := b.u32(), b.u32()
	if b.err == nil && encoding != ImageEncodingPNG && encoding != ImageEncodingTIFF {
		b.fail("image encoding %d, want 0 (PNG) or 1 (TIFF)", encoding)
	}
	return flag != 0, encoding
}

func embeddedHeightImageDecoder(b *block) (TagData, error) {
	result := &EmbeddedHeightImage{}
	result.Seamless, result.Encoding = imageFlags(b)
	result.MinMetres, result.MaxMetres = b.f32(), b.f32()
	result.Image = b.rest()
	return b.result(result)
}

func embeddedNormalImageDecoder(b *block) (TagData, error) {
	result := &EmbeddedNormalImage{}
	result.Seamless, result.Encoding = imageFlags(b)
	result.Image = b.rest()
	return b.result(result)
}
