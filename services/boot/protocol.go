package boot

import (
	"context"
	"runtime"

	"bootstage-go/errcode"
	"bootstage-go/services/boot/internal/link"
	"bootstage-go/x/shmring"
)

// Link is the byte stream a Protocol talks over.
type Link = link.Link

// Protocol is the update protocol run while the loader stays resident.
// Serve returns when the protocol is complete; the target then resets.
type Protocol interface {
	Serve(ctx context.Context, l *Link) error
}

// ProtocolFunc adapts a function to Protocol.
type ProtocolFunc func(ctx context.Context, l *Link) error

func (f ProtocolFunc) Serve(ctx context.Context, l *Link) error { return f(ctx, l) }

// Echo returns every byte it receives. Limit > 0 completes after that many
// bytes; zero echoes until ctx ends.
type Echo struct{ Limit int }

func (e Echo) Serve(ctx context.Context, l *Link) error {
	for n := 0; e.Limit == 0 || n < e.Limit; n++ {
		b, err := l.ReceiveContext(ctx)
		if err != nil {
			return err
		}
		for l.TxSpace() == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}
		// Only the service loop pushes TX, so the space cannot vanish.
		if l.Transmit(b) == shmring.Rejected {
			return errcode.BufferOverflow
		}
	}
	return nil
}
