package iccmax

import (
	"testing"

	"github.com/go-andiamo/iccmax/internal/cursor"
	"github.com/stretchr/testify/require"
)

var testHeader = &HeaderContext{
	DeviceClass: ClassDisplay,
	ColorSpace:  ColorSpaceRGB,
	PCS:         ColorSpaceXYZ,
	Version:     Version{Major: 5},
}

// decodePayload runs a complete payload through the dispatcher as a top-level tag would be.
func decodePayload(payload []byte, options *ParseOptions) (TagData, error) {
	d := newDecoder(testHeader, options)
	c := cursor.New(payload)
	data, err := d.decode(c, uint32(len(payload)), namedSlot("test"))
	if err == nil && c.Pos() != int64(len(payload)) {
		panic("cursor not at the end of the payload")
	}
	return data, err
}

// mustDecode decodes payload and narrows the result to T.
func mustDecode[T TagData](t *testing.T, payload []byte) T {
	t.Helper()
	data, err := decodePayload(payload, nil)
	require.NoError(t, err)
	require.IsType(t, *new(T), data)
	return data.(T)
}

// requireCorrupt asserts that payload fails to decode with a corruption error mentioning reason.
func requireCorrupt(t *testing.T, payload []byte, reason string) *CorruptionError {
	t.Helper()
	_, err := decodePayload(payload, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCorrupt)
	var ce *CorruptionError
	require.ErrorAs(t, err, &ce)
	require.Contains(t, ce.Reason, reason)
	return ce
}

func cursorOver(data []byte) *cursor.Cursor {
	return cursor.New(data)
}
