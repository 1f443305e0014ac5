package iccmax

// Matrix is the 3x3 matrix plus offset vector of a lutAToB/lutBToA tag.
type Matrix struct {
	Matrix [3][3]float64
	Offset [3]float64
}

var identity3x3 = [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}

func readMatrix3x3(b *block) (m [9]float64) {
	for i := range m {
		m[i] = b.s15f16()
	}
	return m
}

func matrixSection(b *block, limit int64) *Matrix {
	if b.err != nil {
		return nil
	}
	if limit-b.c.Pos() < 48 {
		b.fail("matrix needs 48 bytes, %d available", limit-b.c.Pos())
		return nil
	}
	result := &Matrix{}
	for i := 0; i < 9; i++ {
		result.Matrix[i/3][i%3] = b.s15f16()
	}
	for i := range result.Offset {
		result.Offset[i] = b.s15f16()
	}
	return result
}
