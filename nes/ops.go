package nes

// CPU instructions. Each operates on the operand resolved for the current
// opcode; only branches change the cycle count themselves.

// ADC - Add with Carry
func (cpu *Cpu6502) opADC() {
	cpu.addWithCarry(cpu.fetch())
}

// AND - Logical AND
func (cpu *Cpu6502) opAND() {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
}

// ASL - Arithmetic Shift Left
func (cpu *Cpu6502) opASL() {
	cpu.modify(cpu.asl)
}

func (cpu *Cpu6502) asl(v byte) byte {
	// Set carry flag to old bit 7.
	cpu.setFlag(StatusFlagC, v&(1<<7) > 0)
	v <<= 1
	cpu.setZN(v)
	return v
}

// LSR - Logical Shift Right
func (cpu *Cpu6502) opLSR() {
	cpu.modify(cpu.lsr)
}

func (cpu *Cpu6502) lsr(v byte) byte {
	// Set carry flag to old bit 0.
	cpu.setFlag(StatusFlagC, v&1 > 0)
	v >>= 1
	cpu.setZN(v)
	return v
}

// ROL - Rotate Left
func (cpu *Cpu6502) opROL() {
	cpu.modify(cpu.rol)
}

func (cpu *Cpu6502) rol(v byte) byte {
	carry := cpu.carry()
	cpu.setFlag(StatusFlagC, v&(1<<7) > 0)
	v = v<<1 | carry
	cpu.setZN(v)
	return v
}

// ROR - Rotate Right
func (cpu *Cpu6502) opROR() {
	cpu.modify(cpu.ror)
}

func (cpu *Cpu6502) ror(v byte) byte {
	carry := cpu.carry()
	cpu.setFlag(StatusFlagC, v&1 > 0)
	v = v>>1 | carry<<7
	cpu.setZN(v)
	return v
}

// Take the branch if cond holds: one extra cycle, two if the target is on
// another page.
func (cpu *Cpu6502) branch(cond bool) {
	if !cond {
		return
	}

	cpu.penalty++
	if cpu.oper.crossed {
		cpu.penalty++
	}

	cpu.Pc = cpu.oper.addr
}

// BCC - Branch if Carry Clear
func (cpu *Cpu6502) opBCC() { cpu.branch(!cpu.Flag(StatusFlagC)) }

// BCS - Branch if Carry Set
func (cpu *Cpu6502) opBCS() { cpu.branch(cpu.Flag(StatusFlagC)) }

// BEQ - Branch if Equal
func (cpu *Cpu6502) opBEQ() { cpu.branch(cpu.Flag(StatusFlagZ)) }

// BNE - Branch if Not Equal
func (cpu *Cpu6502) opBNE() { cpu.branch(!cpu.Flag(StatusFlagZ)) }

// BMI - Branch if Minus
func (cpu *Cpu6502) opBMI() { cpu.branch(cpu.Flag(StatusFlagN)) }

// BPL - Branch if Positive
func (cpu *Cpu6502) opBPL() { cpu.branch(!cpu.Flag(StatusFlagN)) }

// BVC - Branch if Overflow Clear
func (cpu *Cpu6502) opBVC() { cpu.branch(!cpu.Flag(StatusFlagV)) }

// BVS - Branch if Overflow Set
func (cpu *Cpu6502) opBVS() { cpu.branch(cpu.Flag(StatusFlagV)) }

// BIT - Bit Test
func (cpu *Cpu6502) opBIT() {
	data := cpu.fetch()

	cpu.setFlag(StatusFlagZ, data&cpu.A == 0)

	// V and N are copied from bits 6 and 7 of memory.
	cpu.setFlag(StatusFlagV, data&(1<<6) > 0)
	cpu.setFlag(StatusFlagN, data&(1<<7) > 0)
}

// BRK - Force Interrupt
func (cpu *Cpu6502) opBRK() {
	// BRK is two bytes long; the second one is padding skipped on return.
	cpu.Pc++
	cpu.stackPushWord(cpu.Pc)

	// Set B flag according to: http://visual6502.org/wiki/index.php?title=6502_BRK_and_B_bit
	cpu.stackPush(cpu.Status | byte(StatusFlagB|StatusFlagU))
	cpu.setFlag(StatusFlagI, true)

	// Load the IRQ interrupt vector at $FFFE/F to the PC.
	cpu.Pc = cpu.readWord(irqVectAddr)
}

// CLC - Clear Carry Flag
func (cpu *Cpu6502) opCLC() { cpu.setFlag(StatusFlagC, false) }

// CLD - Clear Decimal Mode
func (cpu *Cpu6502) opCLD() { cpu.setFlag(StatusFlagD, false) }

// CLI - Clear Interrupt Disable
func (cpu *Cpu6502) opCLI() { cpu.setFlag(StatusFlagI, false) }

// CLV - Clear Overflow Flag
func (cpu *Cpu6502) opCLV() { cpu.setFlag(StatusFlagV, false) }

// SEC - Set Carry Flag
func (cpu *Cpu6502) opSEC() { cpu.setFlag(StatusFlagC, true) }

// SED - Set Decimal Flag
func (cpu *Cpu6502) opSED() { cpu.setFlag(StatusFlagD, true) }

// SEI - Set Interrupt Disable
func (cpu *Cpu6502) opSEI() { cpu.setFlag(StatusFlagI, true) }

// CMP - Compare (Accumulator)
func (cpu *Cpu6502) opCMP() { cpu.compare(cpu.A, cpu.fetch()) }

// CPX - Compare X Register
func (cpu *Cpu6502) opCPX() { cpu.compare(cpu.X, cpu.fetch()) }

// CPY - Compare Y Register
func (cpu *Cpu6502) opCPY() { cpu.compare(cpu.Y, cpu.fetch()) }

// DEC - Decrement Memory
func (cpu *Cpu6502) opDEC() {
	cpu.setZN(cpu.modify(func(v byte) byte { return v - 1 }))
}

// INC - Increment Memory
func (cpu *Cpu6502) opINC() {
	cpu.setZN(cpu.modify(func(v byte) byte { return v + 1 }))
}

// DEX - Decrement X Register
func (cpu *Cpu6502) opDEX() {
	cpu.X--
	cpu.setZN(cpu.X)
}

// DEY - Decrement Y Register
func (cpu *Cpu6502) opDEY() {
	cpu.Y--
	cpu.setZN(cpu.Y)
}

// INX - Increment X Register
func (cpu *Cpu6502) opINX() {
	cpu.X++
	cpu.setZN(cpu.X)
}

// INY - Increment Y Register
func (cpu *Cpu6502) opINY() {
	cpu.Y++
	cpu.setZN(cpu.Y)
}

// EOR - Exclusive OR
func (cpu *Cpu6502) opEOR() {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
}

// ORA - Logical Inclusive OR
func (cpu *Cpu6502) opORA() {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
}

// JMP - Jump
func (cpu *Cpu6502) opJMP() {
	cpu.Pc = cpu.oper.addr
}

// JSR - Jump to Subroutine
func (cpu *Cpu6502) opJSR() {
	// The pushed return address is the last byte of the JSR instruction.
	cpu.stackPushWord(cpu.Pc - 1)
	cpu.Pc = cpu.oper.addr
}

// RTS - Return from Subroutine
func (cpu *Cpu6502) opRTS() {
	cpu.Pc = cpu.stackPopWord() + 1
}

// RTI - Return from Interrupt
func (cpu *Cpu6502) opRTI() {
	// Pull the status flags then the program counter from the stack.
	cpu.Status = statusFromStack(cpu.stackPop())
	cpu.Pc = cpu.stackPopWord()
}

// LDA - Load Accumulator
func (cpu *Cpu6502) opLDA() {
	cpu.A = cpu.fetch()
	cpu.setZN(cpu.A)
}

// LDX - Load X Register
func (cpu *Cpu6502) opLDX() {
	cpu.X = cpu.fetch()
	cpu.setZN(cpu.X)
}

// LDY - Load Y Register
func (cpu *Cpu6502) opLDY() {
	cpu.Y = cpu.fetch()
	cpu.setZN(cpu.Y)
}

// NOP - No Operation. Undocumented variants with an operand still read it.
func (cpu *Cpu6502) opNOP() {
	if !cpu.oper.implied {
		cpu.fetch()
	}
}

// PHA - Push Accumulator
func (cpu *Cpu6502) opPHA() {
	cpu.stackPush(cpu.A)
}

// PHP - Push Processor Status
func (cpu *Cpu6502) opPHP() {
	cpu.stackPush(cpu.Status | byte(StatusFlagB|StatusFlagU))
}

// PLA - Pull Accumulator
func (cpu *Cpu6502) opPLA() {
	cpu.A = cpu.stackPop()
	cpu.setZN(cpu.A)
}

// PLP - Pull Processor Status
func (cpu *Cpu6502) opPLP() {
	cpu.Status = statusFromStack(cpu.stackPop())
}

// SBC - Subtract with Carry
func (cpu *Cpu6502) opSBC() {
	cpu.subtractWithCarry(cpu.fetch())
}

// STA - Store Accumulator
func (cpu *Cpu6502) opSTA() {
	cpu.write(cpu.oper.addr, cpu.A)
}

// STX - Store X Register
func (cpu *Cpu6502) opSTX() {
	cpu.write(cpu.oper.addr, cpu.X)
}

// STY - Store Y Register
func (cpu *Cpu6502) opSTY() {
	cpu.write(cpu.oper.addr, cpu.Y)
}

// TAX - Transfer Accumulator to X
func (cpu *Cpu6502) opTAX() {
	cpu.X = cpu.A
	cpu.setZN(cpu.X)
}

// TAY - Transfer Accumulator to Y
func (cpu *Cpu6502) opTAY() {
	cpu.Y = cpu.A
	cpu.setZN(cpu.Y)
}

// TSX - Transfer Stack Pointer to X
func (cpu *Cpu6502) opTSX() {
	cpu.X = cpu.Sp
	cpu.setZN(cpu.X)
}

// TXA - Transfer X to Accumulator
func (cpu *Cpu6502) opTXA() {
	cpu.A = cpu.X
	cpu.setZN(cpu.A)
}

// TXS - Transfer X to Stack Pointer. Flags are untouched.
func (cpu *Cpu6502) opTXS() {
	cpu.Sp = cpu.X
}

// TYA - Transfer Y to Accumulator
func (cpu *Cpu6502) opTYA() {
	cpu.A = cpu.Y
	cpu.setZN(cpu.A)
}
