// Package link exposes the transport rings to the update protocol as a byte
// stream. The service loop owns the TX producer and the RX consumer.
package link

import (
	"context"
	"runtime"

	"bootstage-go/errcode"
	"bootstage-go/x/shmring"
)

type Link struct {
	tx *shmring.Producer
	rx *shmring.Consumer
}

func New(tx *shmring.Producer, rx *shmring.Consumer) *Link {
	return &Link{tx: tx, rx: rx}
}

// Transmit queues one byte for the host.
func (l *Link) Transmit(b byte) shmring.PushResult { return l.tx.Push(b) }

// ReceiveNonBlocking returns the next byte from the host, if any.
func (l *Link) ReceiveNonBlocking() (byte, bool) { return l.rx.Pop() }

// ReceiveBlocking spins until a byte arrives. With no host attached it
// spins forever.
func (l *Link) ReceiveBlocking() byte {
	for {
		if b, ok := l.rx.Pop(); ok {
			return b
		}
		runtime.Gosched()
	}
}

// ReceiveContext is ReceiveBlocking with cancellation.
func (l *Link) ReceiveContext(ctx context.Context) (byte, error) {
	for {
		if b, ok := l.rx.Pop(); ok {
			return b, nil
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		runtime.Gosched()
	}
}

// Write queues p. A short write reports errcode.BufferOverflow.
func (l *Link) Write(p []byte) (int, error) {
	n := l.tx.WriteFrom(p)
	if n < len(p) {
		return n, errcode.BufferOverflow
	}
	return n, nil
}

// Read drains up to len(p) buffered bytes without waiting.
func (l *Link) Read(p []byte) (int, error) { return l.rx.ReadInto(p), nil }

// Buffered returns the number of received bytes not yet read.
func (l *Link) Buffered() int { return l.rx.Len() }

// TxSpace returns how many bytes Transmit can still accept.
func (l *Link) TxSpace() int { return l.tx.Ring().Space() }
