package atomx

import (
	"runtime"
	"sync/atomic"
	_ "unsafe" // for linkname

	"github.com/llxisdsh/atomx/internal/opt"
)

const intSize = 32 << (^uint(0) >> 63)

// isTSO_ detects TSO architectures; on TSO, plain reads and writes of
// aligned native-width integers are tear-free
const isTSO_ = !opt.Race_ &&
	(runtime.GOARCH == "amd64" ||
		runtime.GOARCH == "386" ||
		runtime.GOARCH == "s390x")

// loadUint32Relaxed aligned 32-bit load; plain on TSO, otherwise atomic
//
//go:nosplit
func loadUint32Relaxed(addr *uint32) uint32 {
	if isTSO_ {
		return *addr
	}
	return atomic.LoadUint32(addr)
}

// storeUint32Relaxed aligned 32-bit store; plain on TSO, otherwise atomic
//
//go:nosplit
func storeUint32Relaxed(addr *uint32, val uint32) {
	if isTSO_ {
		*addr = val
		return
	}
	atomic.StoreUint32(addr, val)
}

// nextPowOf2 calculates the smallest power of 2 that is greater than or
// equal to n.
// Compatible with both 32-bit and 64-bit systems.
//
//go:nosplit
func nextPowOf2(n int) int {
	if n <= 0 {
		return 1
	}
	v := n - 1
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	if intSize == 64 {
		v |= v >> 32
	}
	return v + 1
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// nolint:all
//
//go:linkname runtime_procPin sync.runtime_procPin
//goland:noinspection ALL
func runtime_procPin() int

// nolint:all
//
//go:linkname runtime_procUnpin sync.runtime_procUnpin
//goland:noinspection ALL
func runtime_procUnpin()
