// Package shmring is a single-producer, single-consumer byte ring over
// caller-owned storage. The producer and consumer sides are separate handles
// granted once by Init; holding a handle is the right to use that side.
//
// A push into a full ring is rejected and counted. The stored bytes are
// never overwritten.
package shmring

import (
	"sync/atomic"

	"bootstage-go/errcode"
)

// PushResult reports the fate of one pushed byte.
type PushResult uint8

const (
	Stored PushResult = iota
	Rejected
)

// Ring holds the shared state. The zero value is unusable until Init.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)

	overflows atomic.Uint32
	split     atomic.Bool

	prod Producer
	cons Consumer
}

// Init binds storage (power-of-two length >= 2) and hands out the only
// producer and consumer handles. A second Init panics.
func (r *Ring) Init(storage []byte) (*Producer, *Consumer) {
	size := len(storage)
	if size < 2 || size&(size-1) != 0 {
		panic(errcode.InvalidSize)
	}
	if !r.split.CompareAndSwap(false, true) {
		panic(errcode.AlreadySplit)
	}
	r.buf = storage
	r.mask = uint32(size - 1)
	r.rd.Store(0)
	r.wr.Store(0)
	r.prod.r = r
	r.cons.r = r
	return &r.prod, &r.cons
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Cap returns the capacity in bytes.
func (r *Ring) Cap() int { return len(r.buf) }

// Len returns the number of buffered bytes.
func (r *Ring) Len() int {
	rd := r.rd.Load()
	wr := r.wr.Load()
	return int(wr - rd)
}

// Space returns the number of bytes that can be pushed before rejection.
func (r *Ring) Space() int { return int(r.size()) - r.Len() }

// Overflows counts rejected bytes since Init.
func (r *Ring) Overflows() uint32 { return r.overflows.Load() }

func (r *Ring) Watermarks() (rd, wr uint32) {
	return r.rd.Load(), r.wr.Load()
}

// ---- Producer side ----

// Producer is the write capability. Only one context may use it.
type Producer struct {
	_ noCopy
	r *Ring
}

// Push stores b, or rejects it when the ring is full.
func (p *Producer) Push(b byte) PushResult {
	r := p.r
	rd := r.rd.Load() // acquire
	wr := r.wr.Load()
	if wr-rd == r.size() {
		r.overflows.Add(1)
		return Rejected
	}
	r.buf[wr&r.mask] = b
	r.wr.Store(wr + 1) // release
	return Stored
}

// HasCapacityFor reports whether n more bytes fit.
func (p *Producer) HasCapacityFor(n int) bool {
	return n >= 0 && n <= p.r.Space()
}

// WriteFrom copies as much of src as fits and returns the count. Bytes that
// do not fit are counted as overflows.
func (p *Producer) WriteFrom(src []byte) (n int) {
	if len(src) == 0 {
		return 0
	}
	r := p.r
	rd := r.rd.Load()
	wr := r.wr.Load()
	space := int(r.size() - (wr - rd))
	n = len(src)
	if n > space {
		r.overflows.Add(uint32(n - space))
		n = space
	}
	if n == 0 {
		return 0
	}

	size := r.size()
	wrIdx := wr & r.mask
	first := int(size - wrIdx)
	if first > n {
		first = n
	}
	copy(r.buf[wrIdx:wrIdx+uint32(first)], src[:first])
	if second := n - first; second > 0 {
		copy(r.buf[:second], src[first:n])
	}
	r.wr.Store(wr + uint32(n)) // release
	return n
}

// Ring exposes read-only counters to the producer's owner.
func (p *Producer) Ring() *Ring { return p.r }

// ---- Consumer side ----

// Consumer is the read capability. Only one context may use it.
type Consumer struct {
	_ noCopy
	r *Ring
}

// Pop returns the oldest byte, or false when the ring is empty. An empty pop
// does not touch the indices.
func (c *Consumer) Pop() (byte, bool) {
	r := c.r
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	if rd == wr {
		return 0, false
	}
	b := r.buf[rd&r.mask]
	r.rd.Store(rd + 1) // release
	return b, true
}

func (c *Consumer) IsEmpty() bool { return c.r.Len() == 0 }

func (c *Consumer) Len() int { return c.r.Len() }

// ReadInto copies up to len(dst) buffered bytes and returns the count.
func (c *Consumer) ReadInto(dst []byte) (n int) {
	if len(dst) == 0 {
		return 0
	}
	r := c.r
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	avail := int(wr - rd)
	if avail <= 0 {
		return 0
	}
	if len(dst) < avail {
		avail = len(dst)
	}
	n = avail

	size := r.size()
	rdIdx := rd & r.mask
	first := int(size - rdIdx)
	if first > n {
		first = n
	}
	copy(dst[:first], r.buf[rdIdx:rdIdx+uint32(first)])
	if second := n - first; second > 0 {
		copy(dst[first:n], r.buf[:second])
	}
	r.rd.Store(rd + uint32(n)) // release
	return n
}

func (c *Consumer) Ring() *Ring { return c.r }

// noCopy makes go vet flag copies of handles.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
