package nes

// Undocumented instructions. Most are two documented operations wired
// together by the NMOS decode logic, and validation ROMs exercise them.
// Reference: http://www.oxyron.de/html/opcodes02.html

// Constants ORed into A by the unstable XAA and LXA opcodes. The value
// differs between chips; these match the common 2A03 behavior.
const (
	xaaMagic byte = 0xEE
	lxaMagic byte = 0xFF
)

// SLO - ASL memory, then ORA
func (cpu *Cpu6502) opSLO() {
	cpu.A |= cpu.modify(cpu.asl)
	cpu.setZN(cpu.A)
}

// RLA - ROL memory, then AND
func (cpu *Cpu6502) opRLA() {
	cpu.A &= cpu.modify(cpu.rol)
	cpu.setZN(cpu.A)
}

// SRE - LSR memory, then EOR
func (cpu *Cpu6502) opSRE() {
	cpu.A ^= cpu.modify(cpu.lsr)
	cpu.setZN(cpu.A)
}

// RRA - ROR memory, then ADC with the carry the rotate produced
func (cpu *Cpu6502) opRRA() {
	cpu.addWithCarry(cpu.modify(cpu.ror))
}

// DCP - DEC memory, then CMP
func (cpu *Cpu6502) opDCP() {
	cpu.compare(cpu.A, cpu.modify(func(v byte) byte { return v - 1 }))
}

// ISB - INC memory, then SBC
func (cpu *Cpu6502) opISB() {
	cpu.subtractWithCarry(cpu.modify(func(v byte) byte { return v + 1 }))
}

// LAX - LDA and LDX from the same operand
func (cpu *Cpu6502) opLAX() {
	cpu.A = cpu.fetch()
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
}

// LXA - immediate LAX, unstable on real chips
func (cpu *Cpu6502) opLXA() {
	cpu.A = (cpu.A | lxaMagic) & cpu.fetch()
	cpu.X = cpu.A
	cpu.setZN(cpu.A)
}

// SAX - store A AND X, flags untouched
func (cpu *Cpu6502) opSAX() {
	cpu.write(cpu.oper.addr, cpu.A&cpu.X)
}

// ANC - AND, then copy N into C
func (cpu *Cpu6502) opANC() {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	cpu.setFlag(StatusFlagC, cpu.Flag(StatusFlagN))
}

// ALR - AND, then LSR A
func (cpu *Cpu6502) opALR() {
	cpu.A = cpu.lsr(cpu.A & cpu.fetch())
}

// ARR - AND, then ROR A, with C and V taken from bits 6 and 5 of the result
func (cpu *Cpu6502) opARR() {
	cpu.A = (cpu.A&cpu.fetch())>>1 | cpu.carry()<<7
	cpu.setZN(cpu.A)
	cpu.setFlag(StatusFlagC, cpu.A&(1<<6) > 0)
	cpu.setFlag(StatusFlagV, (cpu.A>>6^cpu.A>>5)&1 > 0)
}

// AXS - X = (A AND X) - operand, flags as CMP, no borrow in
func (cpu *Cpu6502) opAXS() {
	ax := cpu.A & cpu.X
	data := cpu.fetch()

	cpu.setFlag(StatusFlagC, ax >= data)
	cpu.X = ax - data
	cpu.setZN(cpu.X)
}

// XAA - A = (A OR magic) AND X AND operand, unstable on real chips
func (cpu *Cpu6502) opXAA() {
	cpu.A = (cpu.A | xaaMagic) & cpu.X & cpu.fetch()
	cpu.setZN(cpu.A)
}

// LAS - A, X and SP all become memory AND SP
func (cpu *Cpu6502) opLAS() {
	data := cpu.fetch() & cpu.Sp

	cpu.A = data
	cpu.X = data
	cpu.Sp = data
	cpu.setZN(data)
}

// storeHigh implements the SH* family: the stored value is ANDed with the
// high byte of the unindexed address plus one, and when indexing crossed a
// page that value also replaces the high byte of the target.
func (cpu *Cpu6502) storeHigh(value, index byte) {
	base := cpu.oper.addr - uint16(index)
	value &= byte(base>>8) + 1

	addr := cpu.oper.addr
	if cpu.oper.crossed {
		addr = uint16(value)<<8 | addr&0x00FF
	}

	cpu.write(addr, value)
}

// SHY - store Y AND (H+1)
func (cpu *Cpu6502) opSHY() { cpu.storeHigh(cpu.Y, cpu.X) }

// SHX - store X AND (H+1)
func (cpu *Cpu6502) opSHX() { cpu.storeHigh(cpu.X, cpu.Y) }

// AHX - store A AND X AND (H+1)
func (cpu *Cpu6502) opAHX() { cpu.storeHigh(cpu.A&cpu.X, cpu.Y) }

// TAS - SP = A AND X, then store SP AND (H+1)
func (cpu *Cpu6502) opTAS() {
	cpu.Sp = cpu.A & cpu.X
	cpu.storeHigh(cpu.Sp, cpu.Y)
}

// KIL - halt the processor. The program counter stays on the opcode, so
// every later step executes it again until a reset.
func (cpu *Cpu6502) opKIL() {
	cpu.jammed = true
	cpu.Pc--
}
