// Package transport defines the boundary between the bootloader's rings and
// whatever moves bytes to the host (USB device stack, UART, host serial
// port). Controllers run in interrupt context, or in a goroutine standing in
// for it, and touch the rings only through an Endpoint.
package transport

import "bootstage-go/x/shmring"

// Endpoint is the bootloader side of a transport.
type Endpoint interface {
	// Receive stores one byte from the host (RX producer).
	Receive(b byte) shmring.PushResult
	// NextTX returns the next byte for the host (TX consumer).
	NextTX() (byte, bool)
	HasSpaceFor(n int) bool
	Connected() bool
	// EventsUsed is the number of received bytes not yet consumed.
	EventsUsed() int
	DelayMicroseconds(us int)
}

// Controller is the transport hardware and its driver stack.
type Controller interface {
	// Init binds the controller to ep. Called once from hardware bring-up;
	// it must not unmask an interrupt or start moving bytes.
	Init(ep Endpoint)
	// Start makes the controller live. Called only once the loader has
	// decided to stay, never on the jump path.
	Start()
	// Service is the body of the controller's interrupt handler.
	Service()
}

// Detached is a controller that moves no bytes. Targets whose device stack
// is linked in separately start with it.
type Detached struct{}

func (Detached) Init(Endpoint) {}
func (Detached) Start()        {}
func (Detached) Service()      {}
