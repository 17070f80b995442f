// Package boards holds one types.Board per build, selected by tag:
//
//	board_espruino_f1       Espruino Board 1v3 (STM32F103RCT6)
//	board_stm32f4_discovery STM32F4DISCOVERY (STM32F407VGT6)
//	board_pico              Raspberry Pi Pico (RP2040)
//	(none)                  host simulator wired like the Espruino board
//
// Each file checks its button pull against the chip's supported pulls at
// compile time: an unsupported pull makes the constant below it overflow.
package boards
