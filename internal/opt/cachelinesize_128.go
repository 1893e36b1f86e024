//go:build atomx_cachelinesize_128

package opt

// CacheLineSize_ is forced to 128 bytes via the atomx_cachelinesize_128
// build tag.
// Use: go build -tags=atomx_cachelinesize_128
const CacheLineSize_ = 128
