package iccmax

import (
	"time"

	"github.com/go-andiamo/iccmax/internal/cursor"
	"github.com/x448/float16"
)

// XYZNumber is a CIE tristimulus triple.
type XYZNumber struct {
	X, Y, Z float64
}

// DateTimeNumber holds the calendar fields of a 12 byte dateTimeNumber.
// The fields are kept as stored; no timezone is implied.
type DateTimeNumber struct {
	Year, Month, Day, Hour, Minute, Second uint16
}

// Time converts to a UTC time.Time. The zero DateTimeNumber yields the zero time.
func (d DateTimeNumber) Time() time.Time {
	if d == (DateTimeNumber{}) {
		return time.Time{}
	}
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC)
}

// SpectralRange is a wavelength range in nanometres sampled in Steps steps.
type SpectralRange struct {
	Start float32
	End   float32
	Steps uint16
}

// PositionNumber locates a sub-payload relative to the start of its enclosing structure.
type PositionNumber struct {
	Offset uint32
	Size   uint32
}

// Response16Number is one device value / measurement pair of a response curve.
type Response16Number struct {
	Device      uint16
	Measurement float64
}

func readS15Fixed16(c *cursor.Cursor) (float64, error) {
	v, err := c.ReadUint32()
	return S15Fixed16(v).Float64(), err
}

func readU16Fixed16(c *cursor.Cursor) (float64, error) {
	v, err := c.ReadUint32()
	return U16Fixed16(v).Float64(), err
}

func readU8Fixed8(c *cursor.Cursor) (float64, error) {
	v, err := c.ReadUint16()
	return U8Fixed8(v).Float64(), err
}

func readU1Fixed15(c *cursor.Cursor) (float64, error) {
	v, err := c.ReadUint16()
	return U1Fixed15(v).Float64(), err
}

func readFloat16(c *cursor.Cursor) (float32, error) {
	v, err := c.ReadUint16()
	return float16.Frombits(v).Float32(), err
}

func readXYZNumber(c *cursor.Cursor) (result XYZNumber, err error) {
	if result.X, err = readS15Fixed16(c); err == nil {
		if result.Y, err = readS15Fixed16(c); err == nil {
			result.Z, err = readS15Fixed16(c)
		}
	}
	return result, err
}

func readDateTimeNumber(c *cursor.Cursor) (result DateTimeNumber, err error) {
	fields := [...]*uint16{&result.Year, &result.Month, &result.Day, &result.Hour, &result.Minute, &result.Second}
	for _, f := range fields {
		if *f, err = c.ReadUint16(); err != nil {
			return DateTimeNumber{}, err
		}
	}
	return result, nil
}

func readSpectralRange(c *cursor.Cursor) (result SpectralRange, err error) {
	if result.Start, err = readFloat16(c); err == nil {
		if result.End, err = readFloat16(c); err == nil {
			result.Steps, err = c.ReadUint16()
		}
	}
	return result, err
}

func readPositionNumber(c *cursor.Cursor) (result PositionNumber, err error) {
	if result.Offset, err = c.ReadUint32(); err == nil {
		result.Size, err = c.ReadUint32()
	}
	return result, err
}
