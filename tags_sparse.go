package iccmax

// SparseMatrixArray is a sparseMatrixArrayType ('smat') payload.
type SparseMatrixArray struct {
	ChannelsPerMatrix uint16
	Encoding          uint16 // one of the SparseEncoding constants
	Matrices          []SparseMatrix
}

func (*SparseMatrixArray) TypeSignature() Signature { return TypeSparseMatrixArray }
func (*SparseMatrixArray) isTagData()               {}

// Sparse matrix value encodings.
const (
	SparseEncodingUInt8   uint16 = 1
	SparseEncodingUInt16  uint16 = 2
	SparseEncodingFloat16 uint16 = 3
	SparseEncodingFloat32 uint16 = 4
)

// SparseMatrix is a compressed sparse row matrix.
//
// The non-zero values of row r are Values[RowStarts[r]:RowStarts[r+1]], in the
// columns Columns[RowStarts[r]:RowStarts[r+1]]. Integer encodings are widened, not normalised.
type SparseMatrix struct {
	Rows      uint16
	Cols      uint16
	RowStarts []uint16
	Columns   []uint16
	Values    []float32
}

var sparseValueWidth = map[uint16]int64{
	SparseEncodingUInt8:   1,
	SparseEncodingUInt16:  2,
	SparseEncodingFloat16: 2,
	SparseEncodingFloat32: 4,
}

func sparseMatrixArrayDecoder(b *block) (TagData, error) {
	result := &SparseMatrixArray{ChannelsPerMatrix: b.u16(), Encoding: b.u16()}
	width, ok := sparseValueWidth[result.Encoding]
	if b.err == nil && !ok {
		b.fail("sparse matrix encoding %d", result.Encoding)
	}
	// each matrix has at least rows, cols and one row start
	n := b.count(uint64(b.u32()), 6, "sparse matrices")
	result.Matrices = make([]SparseMatrix, 0, n)
	for i := 0; i < n && b.err == nil; i++ {
		result.Matrices = append(result.Matrices, sparseMatrix(b, result.ChannelsPerMatrix, result.Encoding, width))
	}
	b.padding()
	return b.result(result)
}

func sparseMatrix(b *block, maxEntries uint16, encoding uint16, width int64) SparseMatrix {
	m := SparseMatrix{Rows: b.u16(), Cols: b.u16()}
	m.RowStarts = make([]uint16, b.count(uint64(m.Rows)+1, 2, "row starts"))
	for i := range m.RowStarts {
		m.RowStarts[i] = b.u16()
		if i > 0 && m.RowStarts[i] < m.RowStarts[i-1] && b.err == nil {
			b.fail("row start %d decreases", i)
		}
	}
	if b.err != nil {
		return m
	}
	nnz := m.RowStarts[len(m.RowStarts)-1]
	if m.RowStarts[0] != 0 || nnz > maxEntries {
		b.fail("sparse matrix has %d entries, limit %d", nnz, maxEntries)
		return m
	}
	m.Columns = make([]uint16, b.count(uint64(nnz), 2, "column indices"))
	for i := range m.Columns {
		m.Columns[i] = b.u16()
		if m.Columns[i] >= m.Cols && b.err == nil {
			b.fail("column index %d outside %d columns", m.Columns[i], m.Cols)
		}
	}
	b.alignIfRoom()
	m.Values = make([]float32, b.count(uint64(nnz), width, "sparse values"))
	for i := range m.Values {
		switch encoding {
		case SparseEncodingUInt8:
			m.Values[i] = float32(b.u8())
		case SparseEncodingUInt16:
			m.Values[i] = float32(b.u16())
		case SparseEncodingFloat16:
			m.Values[i] = b.f16()
		default:
			m.Values[i] = b.f32()
		}
	}
	b.alignIfRoom()
	return m
}
