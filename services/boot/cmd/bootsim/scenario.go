package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario describes one simulated reset.
//
//	button: true          # boot button held
//	image: build/app.hex  # Intel HEX; empty means erased flash
//	port: /dev/ttyACM0    # host side of the transport; empty means detached
//	baud: 115200
//	echo_limit: 0         # bytes to echo before "reset"; 0 runs until ^C
//	relocate: false       # set VTOR and MSP from the image before the jump
type Scenario struct {
	Button    bool   `yaml:"button"`
	Image     string `yaml:"image"`
	Port      string `yaml:"port"`
	Baud      int    `yaml:"baud"`
	EchoLimit int    `yaml:"echo_limit"`
	Relocate  bool   `yaml:"relocate"`
}

const defaultBaud = 115200

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.UnmarshalStrict(data, &sc); err != nil {
		return sc, fmt.Errorf("scenario: %w", err)
	}
	if sc.Baud == 0 {
		sc.Baud = defaultBaud
	}
	if sc.Baud < 0 {
		return sc, fmt.Errorf("scenario: baud %d", sc.Baud)
	}
	if sc.EchoLimit < 0 {
		return sc, fmt.Errorf("scenario: echo_limit %d", sc.EchoLimit)
	}
	return sc, nil
}

// LoadScenario reads path; an empty path yields the defaults.
func LoadScenario(path string) (Scenario, error) {
	if path == "" {
		return ParseScenario(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	return ParseScenario(data)
}
