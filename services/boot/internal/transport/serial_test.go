package transport

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootstage-go/errcode"
	"bootstage-go/x/shmring"
)

// pipePort is an in-memory serial port: the test writes host bytes into
// hostW and reads device bytes from sent.
type pipePort struct {
	r     *io.PipeReader
	hostW *io.PipeWriter

	mu   sync.Mutex
	sent bytes.Buffer
}

func newPipePort() *pipePort {
	r, w := io.Pipe()
	return &pipePort{r: r, hostW: w}
}

func (p *pipePort) Read(b []byte) (int, error) { return p.r.Read(b) }
func (p *pipePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent.Write(b)
}
func (p *pipePort) Close() error {
	_ = p.hostW.Close()
	return p.r.Close()
}
func (p *pipePort) Sent() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sent.String()
}

// ringEndpoint is a minimal Endpoint over two rings.
type ringEndpoint struct {
	rx *shmring.Producer
	tx *shmring.Consumer
}

func (e *ringEndpoint) Receive(b byte) shmring.PushResult { return e.rx.Push(b) }
func (e *ringEndpoint) NextTX() (byte, bool)              { return e.tx.Pop() }
func (e *ringEndpoint) HasSpaceFor(n int) bool            { return e.rx.HasCapacityFor(n) }
func (e *ringEndpoint) Connected() bool                   { return true }
func (e *ringEndpoint) EventsUsed() int                   { return e.rx.Ring().Len() }
func (e *ringEndpoint) DelayMicroseconds(int)             {}

func TestSerialPumpsBothDirections(t *testing.T) {
	var rx, tx shmring.Ring
	rxP, rxC := rx.Init(make([]byte, 16))
	txP, txC := tx.Init(make([]byte, 16))

	port := newPipePort()
	s := NewSerial(port)
	s.Init(&ringEndpoint{rx: rxP, tx: txC})
	s.Start()
	defer s.Close()

	_, err := port.hostW.Write([]byte{0x41, 0x42, 0x43})
	require.NoError(t, err)

	got := make([]byte, 0, 3)
	require.Eventually(t, func() bool {
		for {
			b, ok := rxC.Pop()
			if !ok {
				break
			}
			got = append(got, b)
		}
		return len(got) == 3
	}, time.Second, time.Millisecond)
	assert.Equal(t, []byte{0x41, 0x42, 0x43}, got)

	txP.WriteFrom([]byte("ok\n"))
	s.Service()
	require.Eventually(t, func() bool { return port.Sent() == "ok\n" }, time.Second, time.Millisecond)
}

func TestSerialCountsRxDrops(t *testing.T) {
	var rx, tx shmring.Ring
	rxP, _ := rx.Init(make([]byte, 4))
	_, txC := tx.Init(make([]byte, 4))

	port := newPipePort()
	s := NewSerial(port)
	s.Init(&ringEndpoint{rx: rxP, tx: txC})
	s.Start()

	_, err := port.hostW.Write([]byte("abcdef"))
	require.NoError(t, err)
	require.Eventually(t, func() bool { return s.RxDrops() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, uint32(2), rx.Overflows())

	require.NoError(t, s.Close())
	assert.NoError(t, s.Err(), "reader stopped by Close must not record an error")
}

func TestSerialIdleUntilStart(t *testing.T) {
	var rx, tx shmring.Ring
	rxP, rxC := rx.Init(make([]byte, 8))
	_, txC := tx.Init(make([]byte, 8))

	port := newPipePort()
	s := NewSerial(port)
	s.Init(&ringEndpoint{rx: rxP, tx: txC})

	wrote := make(chan struct{})
	go func() {
		_, _ = port.hostW.Write([]byte{0x55})
		close(wrote)
	}()
	time.Sleep(20 * time.Millisecond)
	assert.True(t, rxC.IsEmpty(), "bound but not started: nothing may be read")

	s.Start()
	require.Eventually(t, func() bool { return rxC.Len() == 1 }, time.Second, time.Millisecond)
	<-wrote
	require.NoError(t, s.Close())
}

// brokenTxPort reads nothing until closed and fails every write.
type brokenTxPort struct {
	closed chan struct{}
}

func (p *brokenTxPort) Read([]byte) (int, error) {
	<-p.closed
	return 0, io.EOF
}
func (p *brokenTxPort) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }
func (p *brokenTxPort) Close() error {
	close(p.closed)
	return nil
}

func TestSerialRecordsWriteError(t *testing.T) {
	var rx, tx shmring.Ring
	rxP, _ := rx.Init(make([]byte, 8))
	txP, txC := tx.Init(make([]byte, 8))

	s := NewSerial(&brokenTxPort{closed: make(chan struct{})})
	s.Init(&ringEndpoint{rx: rxP, tx: txC})
	s.Start()
	txP.WriteFrom([]byte("hi"))
	s.Service()

	require.Eventually(t, func() bool { return s.Err() != nil }, time.Second, time.Millisecond)
	assert.Equal(t, errcode.NotConnected, errcode.Of(s.Err()))
	assert.Contains(t, s.Err().Error(), "serial.write")
	require.NoError(t, s.Close())
}

func TestDetachedIsInert(t *testing.T) {
	var d Controller = Detached{}
	d.Init(nil)
	d.Start()
	d.Service()
}
