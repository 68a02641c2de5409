package nes

import (
	"bytes"
	"fmt"
)

// Disassemble the 6502 program held in mem into human-readable CPU
// instructions mapped to their respective memory address. Memory is only
// read, so mem should be side-effect free over the range.
//
// Much help from https://github.com/OneLoneCoder/olcNES
func Disassemble(mem Memory, startAddr, endAddr uint16) map[uint16]string {
	// Current CPU instruction, disassembled
	var lineDiss bytes.Buffer
	var value, lo, hi byte

	// this needs to be bigger than uint16, to determine when larger than endAddr
	var addr uint32 = uint32(startAddr)

	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		// Instruction memory address
		lineAddr := uint16(addr)
		lineDiss.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		// Readable instruction name
		opcode := mem.Read(uint16(addr))
		addr++
		inst := instLookup[opcode]
		if !inst.Legal {
			lineDiss.WriteByte('*')
		}
		lineDiss.WriteString(fmt.Sprintf("%s ", inst.Name))

		switch inst.Mode {
		case IMP:
			lineDiss.WriteString("{IMP}")
		case ACC:
			lineDiss.WriteString("A {ACC}")
		case IMM:
			value = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("#$%02X {IMM}", value))
		case REL:
			value = mem.Read(uint16(addr))
			addr++
			target := uint16(addr) + uint16(int8(value))
			lineDiss.WriteString(fmt.Sprintf("$%02X [$%04X] {REL}", value, target))
		case ZP0:
			lo = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X {ZP0}", lo))
		case ZPX:
			lo = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X,X {ZPX}", lo))
		case ZPY:
			lo = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("$%02X,Y {ZPY}", lo))
		case ABS, ABX, ABY, IND:
			lo = mem.Read(uint16(addr))
			addr++
			hi = mem.Read(uint16(addr))
			addr++
			word := uint16(hi)<<8 | uint16(lo)
			switch inst.Mode {
			case ABS:
				lineDiss.WriteString(fmt.Sprintf("$%04X {ABS}", word))
			case ABX:
				lineDiss.WriteString(fmt.Sprintf("$%04X,X {ABX}", word))
			case ABY:
				lineDiss.WriteString(fmt.Sprintf("$%04X,Y {ABY}", word))
			case IND:
				lineDiss.WriteString(fmt.Sprintf("($%04X) {IND}", word))
			}
		case IZX:
			lo = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X,X) {IZX}", lo))
		case IZY:
			lo = mem.Read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf("($%02X),Y {IZY}", lo))
		}

		// Add to map
		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	return disassembly
}
