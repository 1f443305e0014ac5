package iccmax

// S15Fixed16 is a signed fixed point number with 16 fractional bits.
type S15Fixed16 int32

func (f S15Fixed16) Float64() float64 {
	return float64(f) / 65536.0
}

// U16Fixed16 is an unsigned fixed point number with 16 fractional bits.
type U16Fixed16 uint32

func (f U16Fixed16) Float64() float64 {
	return float64(f) / 65536.0
}

// U8Fixed8 is an unsigned fixed point number with 8 fractional bits.
type U8Fixed8 uint16

func (f U8Fixed8) Float64() float64 {
	return float64(f) / 256.0
}

// U1Fixed15 is an unsigned fixed point number with 15 fractional bits.
type U1Fixed15 uint16

func (f U1Fixed15) Float64() float64 {
	return float64(f) / 32768.0
}
