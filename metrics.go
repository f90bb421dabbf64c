package strpool

// SizeInUse returns the number of bytes held by the pool's entries,
// terminators included.
func (p *Pool) SizeInUse() int {
	return p.size
}

// Fallbacks returns how many entries since the last Clear were stored as the
// empty string because conversion failed.
func (p *Pool) Fallbacks() int {
	return p.fallbacks
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool) Metrics() PoolMetrics {
	return PoolMetrics{
		Entries:   p.Len(),
		SizeInUse: p.SizeInUse(),
		Fallbacks: p.Fallbacks(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	Entries   int // Number of stored buffers
	SizeInUse int // Bytes across buffers, terminators included
	Fallbacks int // Buffers stored empty after a failed conversion
}
