package strpool

import (
	"runtime"
	"unsafe"
)

// CString is a read-only view of a NUL-terminated UTF-8 buffer owned by a
// Pool. It stays valid until the pool is cleared or released.
type CString struct {
	b []byte
}

// Ptr returns the address of the first byte, suitable for APIs that expect
// a NUL-terminated char pointer. It returns nil for the zero CString.
func (c CString) Ptr() *byte {
	if len(c.b) == 0 {
		return nil
	}
	return &c.b[0]
}

// Bytes returns the buffer including its terminator.
// The returned slice must not be modified.
func (c CString) Bytes() []byte {
	return c.b
}

// Len returns the buffer length in bytes, terminator included.
func (c CString) Len() int {
	return len(c.b)
}

// String returns a copy of the UTF-8 content without the terminator.
func (c CString) String() string {
	if len(c.b) == 0 {
		return ""
	}
	return string(c.b[:len(c.b)-1])
}

// PtrAndKeepAlive returns c.Ptr() and calls runtime.KeepAlive on the pool.
// This is useful to keep the pool reachable while the address is handed to
// foreign code.
func PtrAndKeepAlive(p *Pool, c CString) *byte {
	runtime.KeepAlive(p)
	return c.Ptr()
}

// Addr returns the numeric address of the buffer, or 0 for the zero CString.
func (c CString) Addr() uintptr {
	return uintptr(unsafe.Pointer(c.Ptr()))
}
