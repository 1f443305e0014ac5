package iccmax

// Numeric array payloads. Only unsigned integer and floating point arrays
// have type signatures in ICC.1 and ICC.2, so there are no signed integer arrays.

// UInt8Array is a uInt8ArrayType ('ui08') payload.
type UInt8Array struct{ Values []uint8 }

// UInt16Array is a uInt16ArrayType ('ui16') payload.
type UInt16Array struct{ Values []uint16 }

// UInt32Array is a uInt32ArrayType ('ui32') payload.
type UInt32Array struct{ Values []uint32 }

// UInt64Array is a uInt64ArrayType ('ui64') payload.
type UInt64Array struct{ Values []uint64 }

// Float16Array is a float16ArrayType ('fl16') payload, widened to float32.
type Float16Array struct{ Values []float32 }

// Float32Array is a float32ArrayType ('fl32') payload.
type Float32Array struct{ Values []float32 }

// Float64Array is a float64ArrayType ('fl64') payload.
type Float64Array struct{ Values []float64 }

// S15Fixed16Array is an s15Fixed16ArrayType ('sf32') payload.
type S15Fixed16Array struct{ Values []float64 }

// U16Fixed16Array is a u16Fixed16ArrayType ('uf32') payload.
type U16Fixed16Array struct{ Values []float64 }

func (*UInt8Array) TypeSignature() Signature      { return TypeUInt8Array }
func (*UInt16Array) TypeSignature() Signature     { return TypeUInt16Array }
func (*UInt32Array) TypeSignature() Signature     { return TypeUInt32Array }
func (*UInt64Array) TypeSignature() Signature     { return TypeUInt64Array }
func (*Float16Array) TypeSignature() Signature    { return TypeFloat16Array }
func (*Float32Array) TypeSignature() Signature    { return TypeFloat32Array }
func (*Float64Array) TypeSignature() Signature    { return TypeFloat64Array }
func (*S15Fixed16Array) TypeSignature() Signature { return TypeS15Fixed16Array }
func (*U16Fixed16Array) TypeSignature() Signature { return TypeU16Fixed16Array }

func (*UInt8Array) isTagData()      {}
func (*UInt16Array) isTagData()     {}
func (*UInt32Array) isTagData()     {}
func (*UInt64Array) isTagData()     {}
func (*Float16Array) isTagData()    {}
func (*Float32Array) isTagData()    {}
func (*Float64Array) isTagData()    {}
func (*S15Fixed16Array) isTagData() {}
func (*U16Fixed16Array) isTagData() {}

// arrayValues reads the rest of the block as elements of width bytes.
func arrayValues[T any](b *block, width int64, read func(*block) T) []T {
	if b.left()%width != 0 {
		b.fail("%d array bytes is not a multiple of %d", b.left(), width)
		return nil
	}
	values := make([]T, b.left()/width)
	for i := range values {
		values[i] = read(b)
	}
	return values
}

func arrayDecoder[T any](width int64, read func(*block) T, wrap func([]T) TagData) tagDecoder {
	return func(b *block) (TagData, error) {
		values := arrayValues(b, width, read)
		return b.result(wrap(values))
	}
}

var (
	uint8ArrayDecoder = arrayDecoder(1, (*block).u8, func(v []uint8) TagData {
		return &UInt8Array{Values: v}
	})
	uint16ArrayDecoder = arrayDecoder(2, (*block).u16, func(v []uint16) TagData {
		return &UInt16Array{Values: v}
	})
	uint32ArrayDecoder = arrayDecoder(4, (*block).u32, func(v []uint32) TagData {
		return &UInt32Array{Values: v}
	})
	uint64ArrayDecoder = arrayDecoder(8, (*block).u64, func(v []uint64) TagData {
		return &UInt64Array{Values: v}
	})
	float16ArrayDecoder = arrayDecoder(2, (*block).f16, func(v []float32) TagData {
		return &Float16Array{Values: v}
	})
	float32ArrayDecoder = arrayDecoder(4, (*block).f32, func(v []float32) TagData {
		return &Float32Array{Values: v}
	})
	float64ArrayDecoder = arrayDecoder(8, (*block).f64, func(v []float64) TagData {
		return &Float64Array{Values: v}
	})
	s15Fixed16ArrayDecoder = arrayDecoder(4, (*block).s15f16, func(v []float64) TagData {
		return &S15Fixed16Array{Values: v}
	})
	u16Fixed16ArrayDecoder = arrayDecoder(4, (*block).u16f16, func(v []float64) TagData {
		return &U16Fixed16Array{Values: v}
	})
)
