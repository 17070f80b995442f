package transport

import "bootstage-go/errcode"

// byteIO is the byte-level surface of a buffered UART driver.
type byteIO interface {
	Read(p []byte) (int, error)
	WriteByte(c byte) error
}

// pumpOnce moves buffered RX bytes into ep, then drains ep's TX queue into
// hw. It stops at the first driver error; a byte whose write failed is lost.
func pumpOnce(hw byteIO, ep Endpoint) error {
	var buf [64]byte
	n, err := hw.Read(buf[:])
	for i := 0; i < n; i++ {
		// A full RX ring rejects and counts the byte itself.
		ep.Receive(buf[i])
	}
	if err != nil {
		return errcode.Wrap(errcode.NotConnected, "uart.read", err)
	}
	for {
		b, ok := ep.NextTX()
		if !ok {
			return nil
		}
		if err := hw.WriteByte(b); err != nil {
			return errcode.Wrap(errcode.NotConnected, "uart.write", err)
		}
	}
}
