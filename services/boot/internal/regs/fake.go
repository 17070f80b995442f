package regs

import "sync"

// Write records one Store on a Fake.
type Write struct {
	Addr  uint32
	Value uint32
}

// Fake is a sparse register file for host builds. Unwritten addresses read
// as zero unless Default is set.
type Fake struct {
	mu      sync.Mutex
	words   map[uint32]uint32
	log     []Write
	Default uint32
}

func NewFake() *Fake { return &Fake{words: make(map[uint32]uint32)} }

func (f *Fake) Load(addr uint32) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.words[addr]; ok {
		return v
	}
	return f.Default
}

func (f *Fake) Store(addr uint32, v uint32) {
	f.mu.Lock()
	if f.words == nil {
		f.words = make(map[uint32]uint32)
	}
	f.words[addr] = v
	f.log = append(f.log, Write{Addr: addr, Value: v})
	f.mu.Unlock()
}

// Poke sets a register without logging it (e.g. an input data register the
// hardware would drive).
func (f *Fake) Poke(addr uint32, v uint32) {
	f.mu.Lock()
	if f.words == nil {
		f.words = make(map[uint32]uint32)
	}
	f.words[addr] = v
	f.mu.Unlock()
}

// Writes returns a copy of the store log in order.
func (f *Fake) Writes() []Write {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Write(nil), f.log...)
}

// WritesTo returns the values stored to addr, in order.
func (f *Fake) WritesTo(addr uint32) []uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []uint32
	for _, w := range f.log {
		if w.Addr == addr {
			out = append(out, w.Value)
		}
	}
	return out
}

func (f *Fake) ResetLog() {
	f.mu.Lock()
	f.log = f.log[:0]
	f.mu.Unlock()
}
