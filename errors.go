package strpool

import "errors"

// ErrConversionFailed is returned by TryAllocate when the converter rejects
// a non-empty wide string.
var ErrConversionFailed = errors.New("strpool: wide string conversion failed")
