package strpool

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Converter turns wide strings into NUL-terminated UTF-8. src never contains
// a zero code unit.
type Converter interface {
	// Measure returns the number of bytes Convert needs for src, terminator
	// included, or a value <= 0 if src cannot be converted.
	Measure(src []uint16) int
	// Convert writes src and a terminator into dst and returns the number of
	// bytes written, or a value <= 0 on failure.
	Convert(dst []byte, src []uint16) int
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// UTF16Converter is a portable Converter that decodes UTF-16 code units.
//
// Unpaired surrogates become U+FFFD. With Strict set they make the
// conversion fail instead.
type UTF16Converter struct {
	Strict bool
}

// Measure implements Converter.
func (c UTF16Converter) Measure(src []uint16) int {
	if c.Strict && !validUTF16(src) {
		return 0
	}
	in := leBytes(src)
	dec := utf16LE.NewDecoder()
	var scratch [256]byte
	n := 1
	for len(in) > 0 {
		nDst, nSrc, err := dec.Transform(scratch[:], in, true)
		n += nDst
		in = in[nSrc:]
		if err == nil {
			break
		}
		if !errors.Is(err, transform.ErrShortDst) || nDst == 0 {
			return 0
		}
	}
	return n
}

// Convert implements Converter.
func (c UTF16Converter) Convert(dst []byte, src []uint16) int {
	if len(dst) == 0 || c.Strict && !validUTF16(src) {
		return 0
	}
	nDst, _, err := utf16LE.NewDecoder().Transform(dst[:len(dst)-1], leBytes(src), true)
	if err != nil {
		return 0
	}
	dst[nDst] = 0
	return nDst + 1
}

func leBytes(src []uint16) []byte {
	b := make([]byte, 0, 2*len(src))
	for _, u := range src {
		b = binary.LittleEndian.AppendUint16(b, u)
	}
	return b
}

// validUTF16 reports whether every surrogate in src is part of a pair.
func validUTF16(src []uint16) bool {
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		if !utf16.IsSurrogate(r) {
			continue
		}
		if i+1 == len(src) || utf16.DecodeRune(r, rune(src[i+1])) == utf8.RuneError {
			return false
		}
		i++
	}
	return true
}
