package strpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTF16ConverterMeasure(t *testing.T) {
	tests := []struct {
		name    string
		src     []uint16
		lenient int
		strict  int
	}{
		{"empty", nil, 1, 1},
		{"ascii", wide("hello"), 6, 6},
		{"two byte", wide("é"), 3, 3},
		{"three byte", wide("€"), 4, 4},
		{"surrogate pair", wide("😀"), 5, 5},
		{"lone high surrogate", []uint16{0xD800, 'x'}, 5, 0},
		{"lone low surrogate", []uint16{'x', 0xDC00, 'y'}, 6, 0},
		{"trailing high surrogate", []uint16{'x', 0xD800}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.lenient > 0 {
				assert.Equal(t, tt.lenient, UTF16Converter{}.Measure(tt.src))
			}
			assert.Equal(t, tt.strict, UTF16Converter{Strict: true}.Measure(tt.src))
		})
	}
}

func TestUTF16ConverterLongInput(t *testing.T) {
	// Longer than the scratch buffer Measure decodes through.
	s := ""
	for i := 0; i < 200; i++ {
		s += "ü😀"
	}
	src := wide(s)

	var c UTF16Converter
	n := c.Measure(src)
	require.Equal(t, len(s)+1, n)

	dst := make([]byte, n)
	require.Equal(t, n, c.Convert(dst, src))
	assert.Equal(t, s, string(dst[:n-1]))
	assert.Equal(t, byte(0), dst[n-1])
}

func TestUTF16ConverterConvert(t *testing.T) {
	var c UTF16Converter

	dst := make([]byte, 8)
	n := c.Convert(dst, wide("héllo"))
	assert.Equal(t, 7, n)
	assert.Equal(t, []byte("h\xc3\xa9llo\x00"), dst[:n])

	assert.Equal(t, 0, c.Convert(nil, wide("a")))
	assert.Equal(t, 0, c.Convert(make([]byte, 3), wide("abc")), "short destination")

	dst = make([]byte, 1)
	assert.Equal(t, 1, c.Convert(dst, nil))
	assert.Equal(t, []byte{0}, dst)

	strict := UTF16Converter{Strict: true}
	assert.Equal(t, 0, strict.Convert(make([]byte, 8), []uint16{0xDFFF}))
}

func TestValidUTF16(t *testing.T) {
	assert.True(t, validUTF16(nil))
	assert.True(t, validUTF16(wide("plain")))
	assert.True(t, validUTF16(wide("😀😀")))
	assert.False(t, validUTF16([]uint16{0xD800}))
	assert.False(t, validUTF16([]uint16{0xDC00, 0xD800}))
	assert.False(t, validUTF16([]uint16{0xD800, 0xD800, 0xDC00}))
}

func TestDefaultConverter(t *testing.T) {
	c := DefaultConverter()
	require.NotNil(t, c)

	src := wide("héllo wörld")
	n := c.Measure(src)
	require.Equal(t, len("héllo wörld")+1, n)

	dst := make([]byte, n)
	require.Equal(t, n, c.Convert(dst, src))
	assert.Equal(t, []byte("héllo wörld\x00"), dst)
}
