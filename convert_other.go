//go:build !windows

package strpool

// DefaultConverter returns the converter New uses when none is configured.
func DefaultConverter() Converter {
	return UTF16Converter{}
}
