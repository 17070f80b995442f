//go:build !tinygo

package transport

import (
	"io"
	"sync"
	"time"

	"go.bug.st/serial"

	"bootstage-go/errcode"
	"bootstage-go/x/shmring"
)

// Port is the subset of go.bug.st/serial.Port the controller needs.
type Port interface {
	io.ReadWriteCloser
}

// Serial bridges a host serial port to an Endpoint. A reader goroutine
// plays the RX interrupt, a writer goroutine plays the TX-complete
// interrupt; each is the only user of its ring side.
type Serial struct {
	port Port
	ep   Endpoint

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	rxDrops uint32
	err     error
}

// OpenSerial opens name at baud, 8N1, with a short read timeout so the
// reader notices Close.
func OpenSerial(name string, baud int) (*Serial, error) {
	p, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.NotConnected, "serial.open "+name, err)
	}
	if err := p.SetReadTimeout(50 * time.Millisecond); err != nil {
		_ = p.Close()
		return nil, errcode.Wrap(errcode.Error, "serial.timeout", err)
	}
	return NewSerial(p), nil
}

func NewSerial(p Port) *Serial {
	return &Serial{
		port: p,
		kick: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Init binds ep. Nothing is read from the port until Start.
func (s *Serial) Init(ep Endpoint) { s.ep = ep }

// Start runs the reader and writer goroutines.
func (s *Serial) Start() {
	s.wg.Add(2)
	go s.readLoop()
	go s.writeLoop()
}

// Service wakes the writer; call it after queueing TX bytes.
func (s *Serial) Service() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Close stops both loops and closes the port.
func (s *Serial) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.port.Close()
		s.wg.Wait()
	})
	return err
}

// RxDrops counts host bytes the RX ring rejected.
func (s *Serial) RxDrops() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rxDrops
}

// fail records the first error that stopped a loop. Errors caused by Close
// are not recorded.
func (s *Serial) fail(err error) {
	select {
	case <-s.done:
		return
	default:
	}
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

// Err returns the error that stopped the reader or the writer, if any.
func (s *Serial) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Serial) readLoop() {
	defer s.wg.Done()
	var buf [64]byte
	for {
		n, err := s.port.Read(buf[:])
		for i := 0; i < n; i++ {
			if s.ep.Receive(buf[i]) == shmring.Rejected {
				s.mu.Lock()
				s.rxDrops++
				s.mu.Unlock()
			}
		}
		if err != nil {
			s.fail(errcode.Wrap(errcode.NotConnected, "serial.read", err))
			return
		}
		select {
		case <-s.done:
			return
		default:
		}
	}
}

func (s *Serial) writeLoop() {
	defer s.wg.Done()
	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()
	var buf [64]byte
	for {
		n := 0
		for n < len(buf) {
			b, ok := s.ep.NextTX()
			if !ok {
				break
			}
			buf[n] = b
			n++
		}
		if n > 0 {
			if _, err := s.port.Write(buf[:n]); err != nil {
				s.fail(errcode.Wrap(errcode.NotConnected, "serial.write", err))
				return
			}
			continue
		}
		select {
		case <-s.done:
			return
		case <-s.kick:
		case <-tick.C:
		}
	}
}
