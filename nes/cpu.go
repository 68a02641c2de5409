package nes

import (
	"log"
)

// Memory is the CPU's view of the 16-bit address bus. Both operations are
// total over the whole address space.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, data byte)
}

type Cpu6502 struct {
	Pc     uint16 // Program Counter
	Sp     byte   // Stack Pointer: low 8 bits of next free location on stack.
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Status byte   // Processor Status Flags

	bus Memory // Communication Bus

	CycleCount uint64 // Total # of cycles executed by the CPU

	// Internal variables
	cycles  int     // Cycles left before Clock starts the next instruction
	opcode  byte    // Opcode of the instruction being executed
	oper    operand // Operand resolved by the addressing mode
	penalty int     // Extra cycles charged by the instruction itself (branches)
	stall   int     // Cycles the CPU is held by DMA, charged to the current step
	busy    int     // Base cycles of the instruction being executed, 0 between steps

	// Interrupt lines
	resetPending bool // Reset requested, serviced at the next boundary
	nmiLine      bool // Current level of the NMI line, for edge detection
	nmiPending   bool // NMI edge latched, waiting for service
	irqLine      bool // IRQ line held by some device
	jammed       bool // A KIL opcode halted the processor

	Logger *log.Logger // Per-instruction trace logging, nil to disable
}

func NewCpu6502() *Cpu6502 {
	return &Cpu6502{
		Sp:     powerUpStack,
		Status: powerUpStatus,
	}
}

// Connect the CPU to a 16-bit address bus.
func (cpu *Cpu6502) ConnectBus(m Memory) { cpu.bus = m }

// Read from the attached bus.
func (cpu *Cpu6502) read(addr uint16) byte {
	return cpu.bus.Read(addr)
}

// Write to the attached bus.
func (cpu *Cpu6502) write(addr uint16, data byte) {
	cpu.bus.Write(addr, data)
}

// Read a word from memory (little endian order).
func (cpu *Cpu6502) readWord(addr uint16) uint16 {
	lo := cpu.read(addr)
	hi := cpu.read(addr + 1)

	return (uint16(hi) << 8) | uint16(lo)
}

// Read a word from page zero. The pointer's high byte comes from the start of
// page zero when the low byte sits at $FF.
func (cpu *Cpu6502) readZeroPageWord(ptr byte) uint16 {
	lo := cpu.read(uint16(ptr))
	hi := cpu.read(uint16(ptr + 1))

	return (uint16(hi) << 8) | uint16(lo)
}

// Read the operand of the current instruction: the accumulator for implied
// modes, memory at the resolved address otherwise.
func (cpu *Cpu6502) fetch() byte {
	if cpu.oper.implied {
		return cpu.A
	}
	return cpu.read(cpu.oper.addr)
}

// Read-modify-write on the current operand. Memory sees the unmodified value
// written back before the result, as on the real chip.
func (cpu *Cpu6502) modify(f func(byte) byte) byte {
	if cpu.oper.implied {
		cpu.A = f(cpu.A)
		return cpu.A
	}

	data := cpu.read(cpu.oper.addr)
	cpu.write(cpu.oper.addr, data)

	result := f(data)
	cpu.write(cpu.oper.addr, result)

	return result
}

// Stall holds the CPU for n extra cycles, charged to the instruction being
// executed. Devices that take over the bus, like OAM DMA, call it.
func (cpu *Cpu6502) Stall(n int) { cpu.stall += n }

// Jammed reports whether a KIL opcode has halted the CPU. Only a reset
// recovers it.
func (cpu *Cpu6502) Jammed() bool { return cpu.jammed }

// Step executes exactly one instruction, or services one pending interrupt,
// and returns the number of cycles it took.
func (cpu *Cpu6502) Step() int {
	if cpu.Logger != nil {
		n, _ := cpu.StepTrace()
		return n
	}

	return cpu.step(nil)
}

// StepTrace is Step that also reports what was executed. With a Logger set,
// the trace line is logged too.
func (cpu *Cpu6502) StepTrace() (int, Trace) {
	var t Trace
	n := cpu.step(&t)

	if cpu.Logger != nil {
		cpu.Logger.Print(t.String())
	}

	return n, t
}

func (cpu *Cpu6502) step(t *Trace) int {
	startCycle := cpu.CycleCount

	// Interrupts are only ever taken between instructions.
	if kind := cpu.pendingInterrupt(); kind != InterruptNone {
		before := cpu.Registers()
		n := cpu.service(kind)

		if t != nil {
			*t = Trace{
				Interrupt: kind,
				Before:    before,
				After:     cpu.Registers(),
				Cycle:     startCycle,
				Cycles:    n,
			}
		}
		return n
	}

	if t != nil {
		cpu.traceBefore(t)
	}

	// Get the next opcode by reading from the bus at the location of the
	// current program counter.
	cpu.opcode = cpu.read(cpu.Pc)
	cpu.Pc++

	// Lookup by opcode the instruction to be executed.
	inst := &instLookup[cpu.opcode]

	cpu.oper = cpu.resolve(inst.Mode)
	cpu.penalty = 0

	cpu.busy = int(inst.Cycles)
	inst.exec(cpu)
	cpu.busy = 0

	n := int(inst.Cycles) + cpu.penalty
	if inst.PageCycle && cpu.oper.crossed {
		n++
	}
	n += cpu.stall
	cpu.stall = 0
	cpu.CycleCount += uint64(n)

	if t != nil {
		t.After = cpu.Registers()
		t.Cycles = n
	}

	return n
}

// Cycle reports the cycle the CPU is on. During an instruction that counts
// the instruction's own cycles, so a device reacting to one of its bus writes
// sees the cycle the write landed on.
func (cpu *Cpu6502) Cycle() uint64 {
	return cpu.CycleCount + uint64(cpu.busy)
}

// Clock advances the CPU by a single clock cycle, for callers that interleave
// other devices at cycle granularity. The whole instruction runs on its first
// cycle; the remaining cycles are idle. Clock reports whether the current
// instruction finished on this cycle.
func (cpu *Cpu6502) Clock() bool {
	if cpu.cycles == 0 {
		cpu.cycles = cpu.Step()
	}

	cpu.cycles--

	return cpu.cycles == 0
}
