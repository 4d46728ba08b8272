package alloc

import (
	"math/bits"
	"sync"
)

var SizeClass = [...]int{32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// ClassIndex returns the index of the smallest size class holding n bytes,
// or -1 when n is out of class range and must be allocated directly.
func ClassIndex(n int) int {
	if n <= 0 || n > 32768 {
		return -1
	}
	idx := bits.Len(uint(n))
	if idx < 6 {
		return 0
	}
	if n&(n-1) == 0 {
		return idx - 6
	}
	return idx - 5
}

// Pool hands out heap buffers for container storage. Every Acquire must be
// balanced by exactly one Release; containers rely on that to keep the
// exclusive-ownership invariant across layout transitions and reallocation.
type Pool struct {
	pools [len(SizeClass)]sync.Pool
}

func NewPool() *Pool {
	var p Pool
	for i, sz := range SizeClass {
		size := sz
		p.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &p
}

// Acquire returns a buffer of exactly n bytes, backed by at least n bytes.
func (p *Pool) Acquire(n int) []byte {
	idx := ClassIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := p.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

func (p *Pool) AcquireZeroed(n int) []byte {
	buf := p.Acquire(n)
	clear(buf)
	return buf
}

// Release returns the buffer to its pool if its backing size matches a class.
func (p *Pool) Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < 32 || c > 32768 {
		return // not a valid class
	}
	idx := bits.Len(uint(c)) - 6
	if SizeClass[idx] == c {
		buf = buf[:c]
		p.pools[idx].Put(&buf)
	}
}

var defaultPool = NewPool()

// Acquire hands out a buffer from the package-level pool.
func Acquire(n int) []byte {
	return defaultPool.Acquire(n)
}

// Release returns a buffer obtained from Acquire.
func Release(buf []byte) {
	defaultPool.Release(buf)
}
