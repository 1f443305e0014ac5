package iccmax

type CurveType uint

const (
	CurveTypeIdentity CurveType = iota
	CurveTypeGamma
	CurveTypePoints
)

// Curve is a curveType ('curv') payload.
type Curve struct {
	Type   CurveType
	Gamma  float64  // Type == CurveTypeGamma
	Points []uint16 // Type == CurveTypePoints
}

func (*Curve) TypeSignature() Signature { return TypeCurve }
func (*Curve) isTagData()               {}

// ParametricCurve is a parametricCurveType ('para') payload.
type ParametricCurve struct {
	FunctionType uint16
	Parameters   []float64
}

func (*ParametricCurve) TypeSignature() Signature { return TypeParametricCurve }
func (*ParametricCurve) isTagData()               {}

// parametricParams is the parameter count of each known function type.
var parametricParams = map[uint16]int{0: 1, 1: 3, 2: 4, 3: 5, 4: 7}

func curveDecoder(b *block) (TagData, error) {
	count := b.u32()
	switch {
	case b.err != nil:
		return nil, b.err
	case count == 0:
		b.padding()
		return b.result(&Curve{Type: CurveTypeIdentity})
	case count == 1:
		gamma := b.u8f8()
		b.padding()
		return b.result(&Curve{Type: CurveTypeGamma, Gamma: gamma})
	}
	n := b.count(uint64(count), 2, "curve points")
	points := make([]uint16, n)
	for i := range points {
		points[i] = b.u16()
	}
	b.padding()
	return b.result(&Curve{Type: CurveTypePoints, Points: points})
}

func parametricCurveDecoder(b *block) (TagData, error) {
	funcType := b.u16()
	b.skip(2)
	expected, ok := parametricParams[funcType]
	if !ok {
		// unknown function: the rest of the declared size is its parameter list
		if b.left()%4 != 0 {
			b.fail("para function %d: %d parameter bytes is not a multiple of 4", funcType, b.left())
		}
		expected = int(b.left() / 4)
	}
	n := b.count(uint64(expected), 4, "para parameters")
	params := make([]float64, n)
	for i := range params {
		params[i] = b.s15f16()
	}
	b.padding()
	return b.result(&ParametricCurve{FunctionType: funcType, Parameters: params})
}

// curveSize computes the encoded length of the curv or para payload at the cursor,
// for curves embedded without a declared size. limit is the number of bytes
// available; an unknown parametric function takes all of them.
func curveSize(b *block, limit int64) uint32 {
	if b.err != nil {
		return 0
	}
	if limit < 12 {
		b.fail("embedded curve needs 12 bytes, %d available", limit)
		return 0
	}
	hdr, err := b.c.Peek(12)
	if err != nil {
		b.setErr(err)
		return 0
	}
	typeSig := Signature(uint32(hdr[0])<<24 | uint32(hdr[1])<<16 | uint32(hdr[2])<<8 | uint32(hdr[3]))
	var size uint64
	switch typeSig {
	case TypeCurve:
		count := uint64(hdr[8])<<24 | uint64(hdr[9])<<16 | uint64(hdr[10])<<8 | uint64(hdr[11])
		size = 12 + 2*count
	case TypeParametricCurve:
		funcType := uint16(hdr[8])<<8 | uint16(hdr[9])
		params, ok := parametricParams[funcType]
		if !ok {
			return uint32(limit)
		}
		size = 12 + 4*uint64(params)
	default:
		b.fail("embedded curve has type %q, want curv or para", typeSig)
		return 0
	}
	if size > uint64(limit) {
		b.fail("embedded %s of %d bytes exceeds the %d bytes available", typeSig, size, limit)
		return 0
	}
	return uint32(size)
}

// curveSet decodes n consecutive curv/para curves, each padded to 4 bytes,
// starting at the cursor and ending no later than limit (absolute).
func curveSet(b *block, n int, limit int64, label string) []TagData {
	curves := make([]TagData, 0, n)
	for i := 0; i < n && b.err == nil; i++ {
		size := curveSize(b, limit-b.c.Pos())
		if b.err != nil {
			break
		}
		curve, err := b.d.decode(b.c, size, namedSlot(label, TypeCurve, TypeParametricCurve))
		if err != nil {
			b.setErr(err)
			break
		}
		curves = append(curves, curve)
		if r := (b.c.Pos() - b.start) % 4; r != 0 {
			pad := 4 - r
			switch {
			case b.c.Pos()+pad <= limit:
				b.setErr(b.c.Skip(pad))
			case i < n-1:
				b.fail("%s curve %d: no room for alignment padding", label, i)
			}
		}
	}
	return curves
}
