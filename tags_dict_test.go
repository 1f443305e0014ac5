package iccmax

import (
	"testing"

	icc "github.com/go-andiamo/iccmax/internal/iccbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dict lays out one record per entry of records; each record lists its name,
// value, display name and display value parts, nil meaning absent.
func dict(recordLen int, records ...[][]byte) []byte {
	start := 16 + recordLen*len(records)
	var parts [][]byte
	for _, r := range records {
		for _, p := range r {
			if p != nil {
				parts = append(parts, p)
			}
		}
	}
	pos, body := icc.Layout(start, parts...)
	var table []byte
	i := 0
	for _, r := range records {
		fields := make([]icc.Position, recordLen/8)
		for j, p := range r {
			if p != nil {
				fields[j] = pos[i]
				i++
			}
		}
		table = append(table, icc.Positions(fields...)...)
	}
	return icc.Type("dict", uint32(len(records)), uint32(recordLen), table, body)
}

func TestDictionaryDecoder(t *testing.T) {
	t.Run("NamesAndValues", func(t *testing.T) {
		d := mustDecode[*Dictionary](t, dict(16,
			[][]byte{icc.UTF16("Model"), icc.UTF16("X-200")},
			[][]byte{icc.UTF16("Calibrated"), nil},
		))
		require.Len(t, d.Entries, 2)
		assert.Equal(t, DictEntry{Name: "Model", Value: "X-200", HasValue: true}, d.Entries[0])
		assert.Equal(t, "Calibrated", d.Entries[1].Name)
		assert.False(t, d.Entries[1].HasValue)

		v, ok := d.Get("Model")
		assert.True(t, ok)
		assert.Equal(t, "X-200", v)
		_, ok = d.Get("Calibrated")
		assert.False(t, ok)
		_, ok = d.Get("Serial")
		assert.False(t, ok)
	})

	t.Run("DisplayName", func(t *testing.T) {
		d := mustDecode[*Dictionary](t, dict(24,
			[][]byte{icc.UTF16("Model"), icc.UTF16("X-200"), mluc(localized{"fr", "FR", "Modèle"})},
		))
		require.Len(t, d.Entries, 1)
		require.NotNil(t, d.Entries[0].DisplayName)
		assert.Equal(t, "Modèle", d.Entries[0].DisplayName.Best("fr"))
		assert.Nil(t, d.Entries[0].DisplayValue)
	})

	t.Run("DisplayValue", func(t *testing.T) {
		d := mustDecode[*Dictionary](t, dict(32,
			[][]byte{icc.UTF16("Lang"), icc.UTF16("de"), nil, mluc(localized{"en", "US", "German"})},
		))
		assert.Nil(t, d.Entries[0].DisplayName)
		require.NotNil(t, d.Entries[0].DisplayValue)
		assert.Equal(t, "German", d.Entries[0].DisplayValue.Best("en"))
	})

	t.Run("Empty", func(t *testing.T) {
		d := mustDecode[*Dictionary](t, dict(16))
		assert.Empty(t, d.Entries)
	})

	t.Run("BadRecordLength", func(t *testing.T) {
		requireCorrupt(t, icc.Type("dict", uint32(0), uint32(20)), "dict record length 20, want 16, 24 or 32")
	})

	t.Run("TooManyRecords", func(t *testing.T) {
		requireCorrupt(t, icc.Type("dict", uint32(3), uint32(16)), "3 dict records of 16 bytes exceed the 0 bytes left")
	})

	t.Run("MissingName", func(t *testing.T) {
		payload := icc.Type("dict", uint32(1), uint32(16), icc.Positions(icc.Position{}, icc.Position{}))
		requireCorrupt(t, payload, "dict record 0 has no name")
	})

	t.Run("OddNameLength", func(t *testing.T) {
		requireCorrupt(t, dict(16, [][]byte{[]byte("a\x00b")}), "dict name has odd UTF-16 length 3")
	})

	t.Run("DisplayNameNotMLUC", func(t *testing.T) {
		payload := dict(24, [][]byte{icc.UTF16("Model"), nil, icc.Type("text", "Model\x00\x00\x00")})
		ce := requireCorrupt(t, payload, `unexpected type "text"`)
		assert.Equal(t, "test[dict]/display name[text]", ce.Structure)
	})

	t.Run("DisplayNameUnaligned", func(t *testing.T) {
		payload := icc.Type("dict", uint32(1), uint32(24),
			icc.Positions(icc.Position{Offset: 40, Size: 2}, icc.Position{}, icc.Position{Offset: 42, Size: 16}),
			icc.UTF16("a"), icc.Type("mluc", uint32(0), uint32(12)))
		requireCorrupt(t, payload, "display name offset 42 is not 4-byte aligned")
	})
}
