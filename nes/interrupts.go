package nes

////////////////////////////////////////////////////////////////
// Interrupts
const (
	nmiVectAddr   uint16 = 0xFFFA
	resetVectAddr uint16 = 0xFFFC
	irqVectAddr   uint16 = 0xFFFE
)

// Every interrupt sequence, reset included, takes seven cycles.
const interruptCycles = 7

// Interrupt identifies a hardware interrupt kind.
type Interrupt int

const (
	InterruptNone Interrupt = iota
	InterruptReset
	InterruptNMI
	InterruptIRQ
)

func (i Interrupt) String() string {
	switch i {
	case InterruptReset:
		return "RESET"
	case InterruptNMI:
		return "NMI"
	case InterruptIRQ:
		return "IRQ"
	}
	return "NONE"
}

// Reset forces the CPU into its power-up state and loads the program counter
// from the reset vector. Nothing is pushed. A latched NMI is dropped and a
// jammed CPU runs again, but the NMI and IRQ line levels belong to the
// devices driving them and survive the reset.
func (cpu *Cpu6502) Reset() {
	cpu.A = 0x00
	cpu.X = 0x00
	cpu.Y = 0x00
	cpu.Sp = powerUpStack
	cpu.Status = powerUpStatus

	// Get the program counter from the reset vector.
	cpu.Pc = cpu.readWord(resetVectAddr)

	cpu.resetPending = false
	cpu.nmiPending = false
	cpu.jammed = false
	cpu.stall = 0

	// Spend time on reset
	cpu.CycleCount += interruptCycles
	cpu.cycles = interruptCycles
}

// RequestReset asks for a reset at the next instruction boundary.
func (cpu *Cpu6502) RequestReset() { cpu.resetPending = true }

// RequestNMI latches a non-maskable interrupt. It is serviced once, at the
// next instruction boundary, regardless of the interrupt disable flag.
func (cpu *Cpu6502) RequestNMI() { cpu.nmiPending = true }

// SetNMILine drives the NMI input level. Only the transition to asserted
// latches an interrupt; holding the line does not fire it again.
func (cpu *Cpu6502) SetNMILine(asserted bool) {
	if asserted && !cpu.nmiLine {
		cpu.nmiPending = true
	}
	cpu.nmiLine = asserted
}

// RequestIRQ drives the level-triggered IRQ line. While asserted the
// interrupt is taken at every boundary where the disable flag is clear.
func (cpu *Cpu6502) RequestIRQ(asserted bool) { cpu.irqLine = asserted }

// pendingInterrupt picks the interrupt to service before the next
// instruction: reset, then NMI, then an unmasked IRQ.
func (cpu *Cpu6502) pendingInterrupt() Interrupt {
	switch {
	case cpu.resetPending:
		return InterruptReset
	case cpu.jammed:
		return InterruptNone
	case cpu.nmiPending:
		return InterruptNMI
	case cpu.irqLine && !cpu.Flag(StatusFlagI):
		return InterruptIRQ
	}
	return InterruptNone
}

// service runs the interrupt sequence and returns its cycle cost.
func (cpu *Cpu6502) service(kind Interrupt) int {
	if kind == InterruptReset {
		cpu.Reset()
		// Step reports the cost itself; Clock must not wait for it twice.
		cpu.cycles = 0
		return interruptCycles
	}

	vector := irqVectAddr
	if kind == InterruptNMI {
		// Consume the edge.
		cpu.nmiPending = false
		vector = nmiVectAddr
	}

	// Hardware interrupts push the status with B clear.
	cpu.stackPushWord(cpu.Pc)
	cpu.stackPush((cpu.Status &^ byte(StatusFlagB)) | byte(StatusFlagU))
	cpu.setFlag(StatusFlagI, true)

	cpu.Pc = cpu.readWord(vector)
	cpu.CycleCount += interruptCycles

	return interruptCycles
}
