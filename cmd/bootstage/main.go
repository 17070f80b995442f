// Command bootstage is the bootloader image. Build it for a board with
// e.g. tinygo flash -target bluepill -tags board_espruino_f1 ./cmd/bootstage
package main

import "bootstage-go/services/boot"

func main() { boot.Main() }
