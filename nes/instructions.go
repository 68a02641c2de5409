package nes

////////////////////////////////////////////////////////////////
// Instructions

// Instruction describes one opcode. Every one of the 256 opcode values has a
// descriptor; undocumented opcodes carry their real-hardware behavior.
type Instruction struct {
	Name      string         // Mnemonic
	Mode      AddressingMode // Addressing mode of the operand
	Cycles    byte           // Base cycle cost
	PageCycle bool           // One more cycle when indexing crosses a page
	Legal     bool           // Documented opcode

	exec func(*Cpu6502)
}

// Instruction operation lookup, filled once by init and read-only after.
var instLookup [16 * 16]Instruction

func init() {
	instLookup = buildInstructionTable()
}

// Lookup returns the descriptor for an opcode.
func Lookup(opcode byte) Instruction {
	return instLookup[opcode]
}

// Create the lookup table containing all the CPU instructions.
// Reference: http://archive.6502.org/datasheets/rockwell_r650x_r651x.pdf
// Undocumented opcodes: http://www.oxyron.de/html/opcodes02.html
func buildInstructionTable() [256]Instruction {
	var t [256]Instruction

	// page is 1 when the page-cross penalty applies. Stores and
	// read-modify-write instructions always take the long path instead.
	doc := func(op byte, name string, exec func(*Cpu6502), mode AddressingMode, cycles, page byte) {
		t[op] = Instruction{name, mode, cycles, page == 1, true, exec}
	}
	und := func(op byte, name string, exec func(*Cpu6502), mode AddressingMode, cycles, page byte) {
		t[op] = Instruction{name, mode, cycles, page == 1, false, exec}
	}

	// Loads and stores
	doc(0xA9, "LDA", (*Cpu6502).opLDA, IMM, 2, 0)
	doc(0xA5, "LDA", (*Cpu6502).opLDA, ZP0, 3, 0)
	doc(0xB5, "LDA", (*Cpu6502).opLDA, ZPX, 4, 0)
	doc(0xAD, "LDA", (*Cpu6502).opLDA, ABS, 4, 0)
	doc(0xBD, "LDA", (*Cpu6502).opLDA, ABX, 4, 1)
	doc(0xB9, "LDA", (*Cpu6502).opLDA, ABY, 4, 1)
	doc(0xA1, "LDA", (*Cpu6502).opLDA, IZX, 6, 0)
	doc(0xB1, "LDA", (*Cpu6502).opLDA, IZY, 5, 1)

	doc(0xA2, "LDX", (*Cpu6502).opLDX, IMM, 2, 0)
	doc(0xA6, "LDX", (*Cpu6502).opLDX, ZP0, 3, 0)
	doc(0xB6, "LDX", (*Cpu6502).opLDX, ZPY, 4, 0)
	doc(0xAE, "LDX", (*Cpu6502).opLDX, ABS, 4, 0)
	doc(0xBE, "LDX", (*Cpu6502).opLDX, ABY, 4, 1)

	doc(0xA0, "LDY", (*Cpu6502).opLDY, IMM, 2, 0)
	doc(0xA4, "LDY", (*Cpu6502).opLDY, ZP0, 3, 0)
	doc(0xB4, "LDY", (*Cpu6502).opLDY, ZPX, 4, 0)
	doc(0xAC, "LDY", (*Cpu6502).opLDY, ABS, 4, 0)
	doc(0xBC, "LDY", (*Cpu6502).opLDY, ABX, 4, 1)

	doc(0x85, "STA", (*Cpu6502).opSTA, ZP0, 3, 0)
	doc(0x95, "STA", (*Cpu6502).opSTA, ZPX, 4, 0)
	doc(0x8D, "STA", (*Cpu6502).opSTA, ABS, 4, 0)
	doc(0x9D, "STA", (*Cpu6502).opSTA, ABX, 5, 0)
	doc(0x99, "STA", (*Cpu6502).opSTA, ABY, 5, 0)
	doc(0x81, "STA", (*Cpu6502).opSTA, IZX, 6, 0)
	doc(0x91, "STA", (*Cpu6502).opSTA, IZY, 6, 0)

	doc(0x86, "STX", (*Cpu6502).opSTX, ZP0, 3, 0)
	doc(0x96, "STX", (*Cpu6502).opSTX, ZPY, 4, 0)
	doc(0x8E, "STX", (*Cpu6502).opSTX, ABS, 4, 0)

	doc(0x84, "STY", (*Cpu6502).opSTY, ZP0, 3, 0)
	doc(0x94, "STY", (*Cpu6502).opSTY, ZPX, 4, 0)
	doc(0x8C, "STY", (*Cpu6502).opSTY, ABS, 4, 0)

	// Register transfers
	doc(0xAA, "TAX", (*Cpu6502).opTAX, IMP, 2, 0)
	doc(0xA8, "TAY", (*Cpu6502).opTAY, IMP, 2, 0)
	doc(0xBA, "TSX", (*Cpu6502).opTSX, IMP, 2, 0)
	doc(0x8A, "TXA", (*Cpu6502).opTXA, IMP, 2, 0)
	doc(0x9A, "TXS", (*Cpu6502).opTXS, IMP, 2, 0)
	doc(0x98, "TYA", (*Cpu6502).opTYA, IMP, 2, 0)

	// Stack
	doc(0x48, "PHA", (*Cpu6502).opPHA, IMP, 3, 0)
	doc(0x08, "PHP", (*Cpu6502).opPHP, IMP, 3, 0)
	doc(0x68, "PLA", (*Cpu6502).opPLA, IMP, 4, 0)
	doc(0x28, "PLP", (*Cpu6502).opPLP, IMP, 4, 0)

	// Logic
	for _, e := range []struct {
		name string
		exec func(*Cpu6502)
		base byte
	}{
		{"ORA", (*Cpu6502).opORA, 0x00},
		{"AND", (*Cpu6502).opAND, 0x20},
		{"EOR", (*Cpu6502).opEOR, 0x40},
		{"ADC", (*Cpu6502).opADC, 0x60},
		{"CMP", (*Cpu6502).opCMP, 0xC0},
		{"SBC", (*Cpu6502).opSBC, 0xE0},
	} {
		// The eight "group one" opcodes share one layout per column.
		doc(e.base|0x09, e.name, e.exec, IMM, 2, 0)
		doc(e.base|0x05, e.name, e.exec, ZP0, 3, 0)
		doc(e.base|0x15, e.name, e.exec, ZPX, 4, 0)
		doc(e.base|0x0D, e.name, e.exec, ABS, 4, 0)
		doc(e.base|0x1D, e.name, e.exec, ABX, 4, 1)
		doc(e.base|0x19, e.name, e.exec, ABY, 4, 1)
		doc(e.base|0x01, e.name, e.exec, IZX, 6, 0)
		doc(e.base|0x11, e.name, e.exec, IZY, 5, 1)
	}

	doc(0x24, "BIT", (*Cpu6502).opBIT, ZP0, 3, 0)
	doc(0x2C, "BIT", (*Cpu6502).opBIT, ABS, 4, 0)

	doc(0xE0, "CPX", (*Cpu6502).opCPX, IMM, 2, 0)
	doc(0xE4, "CPX", (*Cpu6502).opCPX, ZP0, 3, 0)
	doc(0xEC, "CPX", (*Cpu6502).opCPX, ABS, 4, 0)

	doc(0xC0, "CPY", (*Cpu6502).opCPY, IMM, 2, 0)
	doc(0xC4, "CPY", (*Cpu6502).opCPY, ZP0, 3, 0)
	doc(0xCC, "CPY", (*Cpu6502).opCPY, ABS, 4, 0)

	// Increments and decrements
	doc(0xE6, "INC", (*Cpu6502).opINC, ZP0, 5, 0)
	doc(0xF6, "INC", (*Cpu6502).opINC, ZPX, 6, 0)
	doc(0xEE, "INC", (*Cpu6502).opINC, ABS, 6, 0)
	doc(0xFE, "INC", (*Cpu6502).opINC, ABX, 7, 0)

	doc(0xC6, "DEC", (*Cpu6502).opDEC, ZP0, 5, 0)
	doc(0xD6, "DEC", (*Cpu6502).opDEC, ZPX, 6, 0)
	doc(0xCE, "DEC", (*Cpu6502).opDEC, ABS, 6, 0)
	doc(0xDE, "DEC", (*Cpu6502).opDEC, ABX, 7, 0)

	doc(0xE8, "INX", (*Cpu6502).opINX, IMP, 2, 0)
	doc(0xC8, "INY", (*Cpu6502).opINY, IMP, 2, 0)
	doc(0xCA, "DEX", (*Cpu6502).opDEX, IMP, 2, 0)
	doc(0x88, "DEY", (*Cpu6502).opDEY, IMP, 2, 0)

	// Shifts
	for _, e := range []struct {
		name string
		exec func(*Cpu6502)
		base byte
	}{
		{"ASL", (*Cpu6502).opASL, 0x00},
		{"ROL", (*Cpu6502).opROL, 0x20},
		{"LSR", (*Cpu6502).opLSR, 0x40},
		{"ROR", (*Cpu6502).opROR, 0x60},
	} {
		doc(e.base|0x0A, e.name, e.exec, ACC, 2, 0)
		doc(e.base|0x06, e.name, e.exec, ZP0, 5, 0)
		doc(e.base|0x16, e.name, e.exec, ZPX, 6, 0)
		doc(e.base|0x0E, e.name, e.exec, ABS, 6, 0)
		doc(e.base|0x1E, e.name, e.exec, ABX, 7, 0)
	}

	// Jumps and calls
	doc(0x4C, "JMP", (*Cpu6502).opJMP, ABS, 3, 0)
	doc(0x6C, "JMP", (*Cpu6502).opJMP, IND, 5, 0)
	doc(0x20, "JSR", (*Cpu6502).opJSR, ABS, 6, 0)
	doc(0x60, "RTS", (*Cpu6502).opRTS, IMP, 6, 0)
	doc(0x00, "BRK", (*Cpu6502).opBRK, IMP, 7, 0)
	doc(0x40, "RTI", (*Cpu6502).opRTI, IMP, 6, 0)

	// Branches charge their own extra cycles.
	doc(0x10, "BPL", (*Cpu6502).opBPL, REL, 2, 0)
	doc(0x30, "BMI", (*Cpu6502).opBMI, REL, 2, 0)
	doc(0x50, "BVC", (*Cpu6502).opBVC, REL, 2, 0)
	doc(0x70, "BVS", (*Cpu6502).opBVS, REL, 2, 0)
	doc(0x90, "BCC", (*Cpu6502).opBCC, REL, 2, 0)
	doc(0xB0, "BCS", (*Cpu6502).opBCS, REL, 2, 0)
	doc(0xD0, "BNE", (*Cpu6502).opBNE, REL, 2, 0)
	doc(0xF0, "BEQ", (*Cpu6502).opBEQ, REL, 2, 0)

	// Flag changes
	doc(0x18, "CLC", (*Cpu6502).opCLC, IMP, 2, 0)
	doc(0xD8, "CLD", (*Cpu6502).opCLD, IMP, 2, 0)
	doc(0x58, "CLI", (*Cpu6502).opCLI, IMP, 2, 0)
	doc(0xB8, "CLV", (*Cpu6502).opCLV, IMP, 2, 0)
	doc(0x38, "SEC", (*Cpu6502).opSEC, IMP, 2, 0)
	doc(0xF8, "SED", (*Cpu6502).opSED, IMP, 2, 0)
	doc(0x78, "SEI", (*Cpu6502).opSEI, IMP, 2, 0)

	doc(0xEA, "NOP", (*Cpu6502).opNOP, IMP, 2, 0)

	////////////////////////////////////////////////////////////////
	// Undocumented opcodes

	// Multi-byte no-ops still read their operand.
	for _, op := range []byte{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		und(op, "NOP", (*Cpu6502).opNOP, IMP, 2, 0)
	}
	for _, op := range []byte{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		und(op, "NOP", (*Cpu6502).opNOP, IMM, 2, 0)
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		und(op, "NOP", (*Cpu6502).opNOP, ZP0, 3, 0)
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		und(op, "NOP", (*Cpu6502).opNOP, ZPX, 4, 0)
	}
	und(0x0C, "NOP", (*Cpu6502).opNOP, ABS, 4, 0)
	for _, op := range []byte{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		und(op, "NOP", (*Cpu6502).opNOP, ABX, 4, 1)
	}

	// Processor lock-up.
	for _, op := range []byte{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xB2, 0xD2, 0xF2} {
		und(op, "KIL", (*Cpu6502).opKIL, IMP, 2, 0)
	}

	// Read-modify-write combined with an ALU operation. They share the
	// layout of the documented shifts plus the indirect and abs,Y columns.
	for _, e := range []struct {
		name string
		exec func(*Cpu6502)
		base byte
	}{
		{"SLO", (*Cpu6502).opSLO, 0x00},
		{"RLA", (*Cpu6502).opRLA, 0x20},
		{"SRE", (*Cpu6502).opSRE, 0x40},
		{"RRA", (*Cpu6502).opRRA, 0x60},
		{"DCP", (*Cpu6502).opDCP, 0xC0},
		{"ISB", (*Cpu6502).opISB, 0xE0},
	} {
		und(e.base|0x07, e.name, e.exec, ZP0, 5, 0)
		und(e.base|0x17, e.name, e.exec, ZPX, 6, 0)
		und(e.base|0x0F, e.name, e.exec, ABS, 6, 0)
		und(e.base|0x1F, e.name, e.exec, ABX, 7, 0)
		und(e.base|0x1B, e.name, e.exec, ABY, 7, 0)
		und(e.base|0x03, e.name, e.exec, IZX, 8, 0)
		und(e.base|0x13, e.name, e.exec, IZY, 8, 0)
	}

	und(0xA7, "LAX", (*Cpu6502).opLAX, ZP0, 3, 0)
	und(0xB7, "LAX", (*Cpu6502).opLAX, ZPY, 4, 0)
	und(0xAF, "LAX", (*Cpu6502).opLAX, ABS, 4, 0)
	und(0xBF, "LAX", (*Cpu6502).opLAX, ABY, 4, 1)
	und(0xA3, "LAX", (*Cpu6502).opLAX, IZX, 6, 0)
	und(0xB3, "LAX", (*Cpu6502).opLAX, IZY, 5, 1)
	und(0xAB, "LXA", (*Cpu6502).opLXA, IMM, 2, 0)

	und(0x87, "SAX", (*Cpu6502).opSAX, ZP0, 3, 0)
	und(0x97, "SAX", (*Cpu6502).opSAX, ZPY, 4, 0)
	und(0x8F, "SAX", (*Cpu6502).opSAX, ABS, 4, 0)
	und(0x83, "SAX", (*Cpu6502).opSAX, IZX, 6, 0)

	und(0xEB, "SBC", (*Cpu6502).opSBC, IMM, 2, 0)

	// Immediate-only combinations.
	und(0x0B, "ANC", (*Cpu6502).opANC, IMM, 2, 0)
	und(0x2B, "ANC", (*Cpu6502).opANC, IMM, 2, 0)
	und(0x4B, "ALR", (*Cpu6502).opALR, IMM, 2, 0)
	und(0x6B, "ARR", (*Cpu6502).opARR, IMM, 2, 0)
	und(0xCB, "AXS", (*Cpu6502).opAXS, IMM, 2, 0)
	und(0x8B, "XAA", (*Cpu6502).opXAA, IMM, 2, 0)

	// Stores that AND the value with the target's high byte plus one.
	und(0x9C, "SHY", (*Cpu6502).opSHY, ABX, 5, 0)
	und(0x9E, "SHX", (*Cpu6502).opSHX, ABY, 5, 0)
	und(0x9F, "AHX", (*Cpu6502).opAHX, ABY, 5, 0)
	und(0x93, "AHX", (*Cpu6502).opAHX, IZY, 6, 0)
	und(0x9B, "TAS", (*Cpu6502).opTAS, ABY, 5, 0)
	und(0xBB, "LAS", (*Cpu6502).opLAS, ABY, 4, 1)

	return t
}
