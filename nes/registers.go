package nes

// Registers is a read-only snapshot of the programmer-visible CPU state.
type Registers struct {
	A      byte   // Accumulator Register
	X      byte   // X Register
	Y      byte   // Y Register
	Sp     byte   // Stack Pointer
	Pc     uint16 // Program Counter
	Status byte   // Processor Status Flags
}

////////////////////////////////////////////////////////////////
// Status Flags
type SF6502 byte // 6502 Status Flag

const (
	StatusFlagC SF6502 = 1 << iota // Carry
	StatusFlagZ                    // Zero
	StatusFlagI                    // Interrupt Disable
	StatusFlagD                    // Decimal Mode (stored, but ignored by the 2A03)
	StatusFlagB                    // Break Command (only exists on the stack)
	StatusFlagU                    // Unused, always reads back as 1
	StatusFlagV                    // Overflow
	StatusFlagN                    // Negative
)

// Status register value after power-up and reset: interrupts disabled and
// the unused bit set.
const powerUpStatus = byte(StatusFlagI | StatusFlagU)

const (
	stackBase    uint16 = 0x0100
	powerUpStack byte   = 0xFD
)

// Registers returns a copy of the current register file.
func (cpu *Cpu6502) Registers() Registers {
	return Registers{
		A:      cpu.A,
		X:      cpu.X,
		Y:      cpu.Y,
		Sp:     cpu.Sp,
		Pc:     cpu.Pc,
		Status: cpu.Status,
	}
}

// Flag reports whether the given status flag is set.
func (cpu *Cpu6502) Flag(f SF6502) bool {
	return cpu.Status&byte(f) != 0
}

// SetFlag sets or clears a single status flag.
func (cpu *Cpu6502) SetFlag(f SF6502, b bool) {
	cpu.setFlag(f, b)
}

// Convenience functions used to get and set CPU status flags.
func (cpu *Cpu6502) getFlag(f SF6502) byte {
	return cpu.Status & byte(f)
}

func (cpu *Cpu6502) setFlag(f SF6502, b bool) {
	if b {
		cpu.Status |= byte(f)
	} else {
		cpu.Status &^= byte(f)
	}
}

// carry returns the carry flag as 0 or 1.
func (cpu *Cpu6502) carry() byte {
	return cpu.Status & byte(StatusFlagC)
}

// setZN derives the Zero and Negative flags from an 8-bit result.
func (cpu *Cpu6502) setZN(v byte) {
	cpu.setFlag(StatusFlagZ, v == 0)
	cpu.setFlag(StatusFlagN, v&(1<<7) > 0)
}

// addWithCarry adds v and the carry flag to the accumulator. Overflow is set
// when both operands share a sign bit that differs from the result's.
func (cpu *Cpu6502) addWithCarry(v byte) {
	// 16-bit to keep any carry.
	sum := uint16(cpu.A) + uint16(v) + uint16(cpu.carry())
	result := byte(sum)

	cpu.setFlag(StatusFlagC, sum > 0xFF)
	cpu.setFlag(StatusFlagV, (cpu.A^result)&(v^result)&0x80 != 0)

	cpu.A = result
	cpu.setZN(result)
}

// subtractWithCarry is addition of the one's complement; carry means no borrow.
func (cpu *Cpu6502) subtractWithCarry(v byte) {
	cpu.addWithCarry(^v)
}

// compare sets C, Z and N as if v were subtracted from reg, without storing.
func (cpu *Cpu6502) compare(reg, v byte) {
	cpu.setFlag(StatusFlagC, reg >= v)
	cpu.setZN(reg - v)
}

// statusFromStack turns a byte pulled by PLP or RTI into a register value:
// the B bit does not exist in the register and U always reads as 1.
func statusFromStack(p byte) byte {
	return (p &^ byte(StatusFlagB)) | byte(StatusFlagU)
}

////////////////////////////////////////////////////////////////
// Stack
// The stack pointer wraps within its byte, so the stack never leaves page one.

func (cpu *Cpu6502) stackPush(data byte) {
	cpu.write(stackBase|uint16(cpu.Sp), data)
	cpu.Sp--
}

func (cpu *Cpu6502) stackPop() byte {
	cpu.Sp++
	return cpu.read(stackBase | uint16(cpu.Sp))
}

// Push a word high byte first, so it sits little endian in memory.
func (cpu *Cpu6502) stackPushWord(data uint16) {
	cpu.stackPush(byte(data >> 8))
	cpu.stackPush(byte(data))
}

func (cpu *Cpu6502) stackPopWord() uint16 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()

	return uint16(hi)<<8 | uint16(lo)
}
