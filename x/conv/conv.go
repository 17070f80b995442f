// Package conv formats register values and counters for println on MCU
// builds, where fmt and strconv are too heavy.
package conv

const hexd = "0123456789ABCDEF"

// AppendHex32 appends n as 0x-prefixed, zero-padded, 8-digit uppercase hex.
func AppendHex32(dst []byte, n uint32) []byte {
	dst = append(dst, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexd[n>>uint(shift)&0xF])
	}
	return dst
}

// Hex32 returns n as "0x0800E205".
func Hex32(n uint32) string {
	var buf [10]byte
	return string(AppendHex32(buf[:0], n))
}

// AppendUint appends the decimal form of n.
func AppendUint(dst []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}

// Dec returns n in decimal.
func Dec(n uint64) string {
	var buf [20]byte
	return string(AppendUint(buf[:0], n))
}
