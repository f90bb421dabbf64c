//go:build windows

package strpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestNativeConverterMatchesUTF16Converter(t *testing.T) {
	inputs := [][]uint16{
		nil,
		wide("hello"),
		wide("héllo"),
		wide("日本語 😀"),
		{'a', 0xD800, 'b'},
	}

	var native NativeConverter
	var portable UTF16Converter
	for _, src := range inputs {
		n := native.Measure(src)
		require.Equal(t, portable.Measure(src), n)

		got := make([]byte, n)
		want := make([]byte, n)
		require.Equal(t, n, native.Convert(got, src))
		require.Equal(t, n, portable.Convert(want, src))
		assert.Equal(t, want, got)
	}
}

func TestNativeConverterShortDestination(t *testing.T) {
	var c NativeConverter
	assert.Equal(t, 0, c.Convert(nil, wide("abc")))
	assert.Equal(t, 0, c.Convert(make([]byte, 1), wide("abc")))
	assert.Equal(t, 0, c.Convert(make([]byte, 3), wide("abc")))
}

func TestAllocatePtrFromWindowsString(t *testing.T) {
	ptr, err := windows.UTF16PtrFromString("C:\\Users\\Zoë")
	require.NoError(t, err)

	p := New()
	assert.Equal(t, "C:\\Users\\Zoë", p.AllocatePtr(ptr).String())
	assert.IsType(t, NativeConverter{}, p.conv)
}
