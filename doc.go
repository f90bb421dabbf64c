// Package strpool keeps NUL-terminated UTF-8 copies of wide (UTF-16)
// strings alive for the duration of a batch of work.
//
// # Overview
//
// Native text APIs hand out wide strings while many consumers, such as C
// logging or interop layers, expect NUL-terminated UTF-8. A Pool converts
// each wide string into its own buffer, keeps every buffer until the batch
// ends and frees them together:
//
//	pool := strpool.New()
//	defer pool.Release()
//
//	title := pool.Allocate(wide)       // wide is a []uint16
//	setTitle(title.Ptr())              // *byte to "...\x00"
//
//	// End of batch: drop every buffer at once.
//	pool.Clear()
//
// # Views
//
// Allocate returns a CString, a read-only view of a buffer owned by the pool.
// Buffers never move, so the address from Ptr stays the same until the pool
// is cleared or released. Entries can also be reached by index with Entry.
//
// # Conversion failures
//
// Allocate never fails. If the converter rejects its input the pool stores
// the empty string instead, exactly as for empty input. TryAllocate reports
// ErrConversionFailed for callers that need to tell the cases apart.
//
// # Converters
//
// The pool measures and converts through a Converter. On Windows the default
// is NativeConverter, backed by WideCharToMultiByte. Elsewhere it is
// UTF16Converter. Both replace unpaired surrogates with U+FFFD; a strict
// UTF16Converter rejects them.
//
// # Thread Safety
//
// A Pool is not goroutine-safe. Callers sharing one must serialize access.
package strpool
