package strpool

import (
	"fmt"
	"unsafe"
)

// Allocate converts src to a NUL-terminated UTF-8 buffer owned by the pool
// and returns a view of it. src ends at its first zero code unit, if any.
//
// Allocate never fails: when the converter reports an error the pool stores
// and returns the empty string. Use TryAllocate to tell the two apart.
func (p *Pool) Allocate(src []uint16) CString {
	p.panicIfReleased()
	src = trimWide(src)
	if buf := p.convert(src); buf != nil {
		return p.store(buf)
	}
	p.fallbacks++
	p.logger.Debug("wide string conversion failed, storing empty string",
		"src_len", len(src),
	)
	return p.store(emptyEntry())
}

// AllocatePtr is like Allocate for a NUL-terminated wide string pointer as
// handed out by native text APIs. A nil pointer is the empty string.
func (p *Pool) AllocatePtr(src *uint16) CString {
	if src == nil {
		p.panicIfReleased()
		return p.store(emptyEntry())
	}
	n := 0
	for ptr := unsafe.Pointer(src); *(*uint16)(ptr) != 0; n++ {
		ptr = unsafe.Add(ptr, unsafe.Sizeof(*src))
	}
	return p.Allocate(unsafe.Slice(src, n))
}

// TryAllocate is like Allocate but reports converter failure instead of
// substituting the empty string. Nothing is stored when it returns an error.
func (p *Pool) TryAllocate(src []uint16) (CString, error) {
	p.panicIfReleased()
	src = trimWide(src)
	buf := p.convert(src)
	if buf == nil {
		if len(src) > 0 {
			return CString{}, fmt.Errorf("%w: %d code units", ErrConversionFailed, len(src))
		}
		buf = emptyEntry()
	}
	return p.store(buf), nil
}

// convert returns a fresh buffer holding src as NUL-terminated UTF-8, or nil
// if the converter failed.
func (p *Pool) convert(src []uint16) []byte {
	needed := p.conv.Measure(src)
	if needed <= 0 {
		return nil
	}
	buf := make([]byte, needed)
	n := p.conv.Convert(buf, src)
	if n <= 0 || n > needed || buf[n-1] != 0 {
		return nil
	}
	return buf[:n:n]
}

func emptyEntry() []byte {
	return make([]byte, 1)
}

// trimWide cuts src at its first zero code unit.
func trimWide(src []uint16) []uint16 {
	for i, c := range src {
		if c == 0 {
			return src[:i]
		}
	}
	return src
}
