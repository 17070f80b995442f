//go:build !(tinygo && (stm32f103 || stm32f3 || stm32f4 || stm32f2))

package bridge

// Bind is a no-op where the controller owns its interrupt (uartx on RP2)
// or a goroutine stands in for it (host).
func Bind(*Bridge) {}
