package bringup

import "bootstage-go/types"

// Step is one read-modify-write: the register becomes (v &^ Clear) | Set.
type Step struct {
	Addr  uint32
	Clear uint32
	Set   uint32
}

// ClockPlan is a family's bring-up register program.
type ClockPlan struct {
	Name string

	// Enable gates clocks to every GPIO bank and declared peripherals.
	Enable []Step
	// Prescale sets PCLK1=HCLK/2 and PCLK2=HCLK/4.
	Prescale []Step
	// SWJ releases the debug pins, applied only when the board asks.
	SWJ *Step

	// PriorityGrouping is false on cores without PRIGROUP (Cortex-M0+).
	PriorityGrouping bool
	SysTick          bool
}

// ---- STM32 reset and clock control ----

const (
	f1RCC = 0x40021000
	f4RCC = 0x40023800

	f1APB2ENR = f1RCC + 0x18
	f1APB1ENR = f1RCC + 0x1C
	f1CFGR    = f1RCC + 0x04
	f3AHBENR  = f1RCC + 0x14

	f4CFGR    = f4RCC + 0x08
	f4AHB1ENR = f4RCC + 0x30
	f4APB1ENR = f4RCC + 0x40
	f4APB2ENR = f4RCC + 0x44

	f1AFIOMAPR = 0x40010004

	pwrEN = 1 << 28

	// APB dividers: 0b100 = /2, 0b101 = /4.
	apbDiv2 = 0b100
	apbDiv4 = 0b101
)

// PlanF1 covers STM32F1: IOPA..IOPG, AFIO, ADC1 and PWR.
var PlanF1 = ClockPlan{
	Name: "stm32f1",
	Enable: []Step{
		{Addr: f1APB2ENR, Set: 1<<0 | 0x7F<<2 | 1<<9},
		{Addr: f1APB1ENR, Set: pwrEN},
	},
	Prescale: []Step{
		{Addr: f1CFGR, Clear: 7<<8 | 7<<11, Set: apbDiv2<<8 | apbDiv4<<11},
	},
	// SWJ_CFG=0b100: JTAG-DP and SW-DP disabled.
	SWJ:              &Step{Addr: f1AFIOMAPR, Clear: 7 << 24, Set: 4 << 24},
	PriorityGrouping: true,
	SysTick:          true,
}

// PlanF3 covers STM32F3: GPIOA..GPIOF on AHB, SYSCFG and PWR.
var PlanF3 = ClockPlan{
	Name: "stm32f3",
	Enable: []Step{
		{Addr: f3AHBENR, Set: 0x3F << 17},
		{Addr: f1APB2ENR, Set: 1 << 0},
		{Addr: f1APB1ENR, Set: pwrEN},
	},
	Prescale: []Step{
		{Addr: f1CFGR, Clear: 7<<8 | 7<<11, Set: apbDiv2<<8 | apbDiv4<<11},
	},
	PriorityGrouping: true,
	SysTick:          true,
}

// PlanF4 covers STM32F2/F4: GPIOA..GPIOH on AHB1, SYSCFG, ADC1 and PWR.
var PlanF4 = ClockPlan{
	Name: "stm32f4",
	Enable: []Step{
		{Addr: f4AHB1ENR, Set: 0xFF},
		{Addr: f4APB2ENR, Set: 1<<14 | 1<<8},
		{Addr: f4APB1ENR, Set: pwrEN},
	},
	Prescale: []Step{
		{Addr: f4CFGR, Clear: 7<<10 | 7<<13, Set: apbDiv2<<10 | apbDiv4<<13},
	},
	PriorityGrouping: true,
	SysTick:          true,
}

// PlanRP2 leaves clocks to the TinyGo runtime, which has already started
// the PLLs and released the IO banks from reset.
var PlanRP2 = ClockPlan{Name: "rp2"}

// PlanHost is empty; host builds have nothing to clock.
var PlanHost = ClockPlan{Name: "host"}

// PlanFor returns the plan for a family.
func PlanFor(f types.Family) ClockPlan {
	switch f {
	case types.FamilySTM32F1:
		return PlanF1
	case types.FamilySTM32F3:
		return PlanF3
	case types.FamilySTM32F4:
		return PlanF4
	case types.FamilyRP2:
		return PlanRP2
	default:
		return PlanHost
	}
}
