package strpool

import "log/slog"

// Pool owns NUL-terminated UTF-8 copies of wide strings until Clear or
// Release. Not goroutine-safe; callers sharing a Pool must serialize access.
type Pool struct {
	entries   [][]byte // each entry is its own allocation
	size      int      // bytes across entries, terminators included
	fallbacks int
	conv      Converter
	logger    *slog.Logger
	released  bool
}

// New creates an empty Pool. Without options the pool converts with
// DefaultConverter and discards log output.
func New(opts ...Option) *Pool {
	o := options{
		converter: DefaultConverter(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return &Pool{
		conv:   o.converter,
		logger: o.logger,
	}
}

// Len returns the number of entries stored since the last Clear.
func (p *Pool) Len() int {
	return len(p.entries)
}

// Entry returns the i-th stored entry in allocation order.
// It panics if i is out of range.
func (p *Pool) Entry(i int) CString {
	p.panicIfReleased()
	return CString{b: p.entries[i]}
}

// Clear drops every entry. Views returned before the call must not be used
// afterwards. The pool behaves as if freshly created.
func (p *Pool) Clear() {
	p.panicIfReleased()
	if len(p.entries) > 0 {
		p.logger.Debug("string pool cleared",
			"entries", len(p.entries),
			"bytes", p.size,
		)
	}
	clear(p.entries)
	p.entries = p.entries[:0]
	p.size = 0
	p.fallbacks = 0
}

// Release drops all entries and makes the pool unusable.
// Any subsequent operations will panic.
func (p *Pool) Release() {
	if p.released {
		return
	}
	p.logger.Debug("string pool released", "entries", len(p.entries))
	p.entries = nil
	p.size = 0
	p.fallbacks = 0
	p.released = true
}

// store appends buf as a new entry.
func (p *Pool) store(buf []byte) CString {
	p.entries = append(p.entries, buf)
	p.size += len(buf)
	return CString{b: buf}
}

// panicIfReleased panics if the pool has been released.
func (p *Pool) panicIfReleased() {
	if p.released {
		panic("strpool: use after Release()")
	}
}
