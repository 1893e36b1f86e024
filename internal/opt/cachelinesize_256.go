//go:build atomx_cachelinesize_256

package opt

// CacheLineSize_ is forced to 256 bytes via the atomx_cachelinesize_256
// build tag.
// Use: go build -tags=atomx_cachelinesize_256
const CacheLineSize_ = 256
