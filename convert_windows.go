//go:build windows

package strpool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const cpUTF8 = 65001

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = modkernel32.NewProc("WideCharToMultiByte")
)

// NativeConverter converts with kernel32's WideCharToMultiByte using the
// UTF-8 code page and no flags, so unpaired surrogates become U+FFFD.
type NativeConverter struct{}

// DefaultConverter returns the converter New uses when none is configured.
func DefaultConverter() Converter {
	return NativeConverter{}
}

// Measure implements Converter.
func (NativeConverter) Measure(src []uint16) int {
	if len(src) == 0 {
		return 1
	}
	n := wideCharToMultiByte(src, nil)
	if n <= 0 {
		return 0
	}
	return n + 1
}

// Convert implements Converter.
func (NativeConverter) Convert(dst []byte, src []uint16) int {
	if len(src) == 0 && len(dst) > 0 {
		dst[0] = 0
		return 1
	}
	if len(dst) < 2 {
		return 0
	}
	n := wideCharToMultiByte(src, dst[:len(dst)-1])
	if n <= 0 {
		return 0
	}
	dst[n] = 0
	return n + 1
}

// wideCharToMultiByte converts src without a terminator. A nil dst queries
// the required size.
func wideCharToMultiByte(src []uint16, dst []byte) int {
	var pdst uintptr
	if len(dst) > 0 {
		pdst = uintptr(unsafe.Pointer(&dst[0]))
	}
	r, _, _ := procWideCharToMultiByte.Call(
		cpUTF8,
		0,
		uintptr(unsafe.Pointer(&src[0])),
		uintptr(len(src)),
		pdst,
		uintptr(len(dst)),
		0,
		0,
	)
	return int(int32(r))
}
