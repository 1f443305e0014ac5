package iccmax

import (
	"maps"
	"slices"
)

// defaultDecoders maps each supported type signature to its decoder. It is not modified after init.
var defaultDecoders map[Signature]tagDecoder

func init() {
	defaultDecoders = map[Signature]tagDecoder{
		TypeChromaticity:              chromaticityDecoder,
		TypeCICP:                      cicpDecoder,
		TypeColorantOrder:             colorantOrderDecoder,
		TypeColorantTable:             colorantTableDecoder,
		TypeCrdInfo:                   crdInfoDecoder,
		TypeCurve:                     curveDecoder,
		TypeData:                      dataDecoder,
		TypeDateTime:                  dateTimeDecoder,
		TypeDictionary:                dictionaryDecoder,
		TypeEmbeddedHeightImage:       embeddedHeightImageDecoder,
		TypeEmbeddedNormalImage:       embeddedNormalImageDecoder,
		TypeFloat16Array:              float16ArrayDecoder,
		TypeFloat32Array:              float32ArrayDecoder,
		TypeFloat64Array:              float64ArrayDecoder,
		TypeGamutBoundaryDesc:         gamutBoundaryDescDecoder,
		TypeLut16:                     lut16Decoder,
		TypeLut8:                      lut8Decoder,
		TypeLutAToB:                   lutAToBDecoder,
		TypeLutBToA:                   lutBToADecoder,
		TypeMeasurement:               measurementDecoder,
		TypeMultiLocalizedUnicode:     multiLocalizedUnicodeDecoder,
		TypeMultiProcessElements:      multiProcessElementsDecoder,
		TypeNamedColor2:               namedColor2Decoder,
		TypeParametricCurve:           parametricCurveDecoder,
		TypeProfileSequenceDesc:       profileSequenceDescDecoder,
		TypeProfileSequenceID:         profileSequenceIDDecoder,
		TypeResponseCurveSet16:        responseCurveSet16Decoder,
		TypeS15Fixed16Array:           s15Fixed16ArrayDecoder,
		TypeScreening:                 screeningDecoder,
		TypeSignature:                 signatureDecoder,
		TypeSparseMatrixArray:         sparseMatrixArrayDecoder,
		TypeSpectralViewingConditions: spectralViewingConditionsDecoder,
		TypeTagArray:                  tagArrayDecoder,
		TypeTagStruct:                 tagStructDecoder,
		TypeText:                      textDecoder,
		TypeTextDescription:           textDescriptionDecoder,
		TypeU16Fixed16Array:           u16Fixed16ArrayDecoder,
		TypeUCRBG:                     ucrbgDecoder,
		TypeUInt8Array:                uint8ArrayDecoder,
		TypeUInt16Array:               uint16ArrayDecoder,
		TypeUInt32Array:               uint32ArrayDecoder,
		TypeUInt64Array:               uint64ArrayDecoder,
		TypeUTF8Text:                  utf8TextDecoder,
		TypeUTF16Text:                 utf16TextDecoder,
		TypeUTF8Zip:                   zipUTF8TextDecoder,
		TypeViewingConditions:         viewingConditionsDecoder,
		TypeXYZ:                       xyzDecoder,
		TypeZipXML:                    zipXMLDecoder,
	}
}

// SupportedTypes returns the type signatures with a built-in decoder.
func SupportedTypes() []Signature {
	return slices.Sorted(maps.Keys(defaultDecoders))
}
