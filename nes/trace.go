package nes

import (
	"fmt"
	"strings"
)

// Trace records one Step: the instruction that ran, or the interrupt that was
// serviced, with the registers on either side.
type Trace struct {
	Interrupt Interrupt // Serviced interrupt; InterruptNone for an instruction

	Pc     uint16      // Address of the opcode
	Opcode byte        // Opcode value
	Bytes  []byte      // Opcode and operand bytes
	Inst   Instruction // Descriptor of the opcode
	Addr   uint16      // Effective address, when the mode has one
	Value  byte        // Memory at Addr before the instruction ran
	Text   string      // Mnemonic and operand in nestest notation

	Before Registers
	After  Registers
	Cycle  uint64 // Cycle count before the step
	Cycles int    // Cycles the step took
}

// Peeker is implemented by memories that can be read without side effects.
// Traces use it so that logging never disturbs device registers.
type Peeker interface {
	Peek(addr uint16) byte
}

func (cpu *Cpu6502) peek(addr uint16) byte {
	if p, ok := cpu.bus.(Peeker); ok {
		return p.Peek(addr)
	}
	return cpu.bus.Read(addr)
}

func (cpu *Cpu6502) peekWord(addr uint16) uint16 {
	return uint16(cpu.peek(addr+1))<<8 | uint16(cpu.peek(addr))
}

// traceBefore fills in everything known before the instruction at Pc runs.
func (cpu *Cpu6502) traceBefore(t *Trace) {
	pc := cpu.Pc
	opcode := cpu.peek(pc)
	inst := instLookup[opcode]

	*t = Trace{
		Pc:     pc,
		Opcode: opcode,
		Inst:   inst,
		Before: cpu.Registers(),
		Cycle:  cpu.CycleCount,
	}

	t.Bytes = make([]byte, 1+inst.Mode.Bytes())
	for i := range t.Bytes {
		t.Bytes[i] = cpu.peek(pc + uint16(i))
	}

	var lo, hi byte
	if len(t.Bytes) > 1 {
		lo = t.Bytes[1]
	}
	if len(t.Bytes) > 2 {
		hi = t.Bytes[2]
	}
	word := uint16(hi)<<8 | uint16(lo)
	next := pc + uint16(len(t.Bytes))

	var operand string
	switch inst.Mode {
	case IMP:
	case ACC:
		operand = "A"
	case IMM:
		operand = fmt.Sprintf("#$%02X", lo)
	case ZP0:
		t.Addr = uint16(lo)
		operand = fmt.Sprintf("$%02X = %02X", lo, cpu.peek(t.Addr))
	case ZPX:
		t.Addr = uint16(lo + cpu.X)
		operand = fmt.Sprintf("$%02X,X @ %02X = %02X", lo, t.Addr, cpu.peek(t.Addr))
	case ZPY:
		t.Addr = uint16(lo + cpu.Y)
		operand = fmt.Sprintf("$%02X,Y @ %02X = %02X", lo, t.Addr, cpu.peek(t.Addr))
	case REL:
		t.Addr = next + uint16(int8(lo))
		operand = fmt.Sprintf("$%04X", t.Addr)
	case ABS:
		t.Addr = word
		if inst.Name == "JMP" || inst.Name == "JSR" {
			operand = fmt.Sprintf("$%04X", word)
		} else {
			operand = fmt.Sprintf("$%04X = %02X", word, cpu.peek(t.Addr))
		}
	case ABX:
		t.Addr = word + uint16(cpu.X)
		operand = fmt.Sprintf("$%04X,X @ %04X = %02X", word, t.Addr, cpu.peek(t.Addr))
	case ABY:
		t.Addr = word + uint16(cpu.Y)
		operand = fmt.Sprintf("$%04X,Y @ %04X = %02X", word, t.Addr, cpu.peek(t.Addr))
	case IND:
		t.Addr = uint16(cpu.peek(word&0xFF00|uint16(byte(word)+1)))<<8 | uint16(cpu.peek(word))
		operand = fmt.Sprintf("($%04X) = %04X", word, t.Addr)
	case IZX:
		ptr := lo + cpu.X
		t.Addr = uint16(cpu.peek(uint16(ptr+1)))<<8 | uint16(cpu.peek(uint16(ptr)))
		operand = fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", lo, ptr, t.Addr, cpu.peek(t.Addr))
	case IZY:
		base := uint16(cpu.peek(uint16(lo+1)))<<8 | uint16(cpu.peek(uint16(lo)))
		t.Addr = base + uint16(cpu.Y)
		operand = fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", lo, base, t.Addr, cpu.peek(t.Addr))
	}

	if inst.Mode != IMP && inst.Mode != ACC && inst.Mode != IMM && inst.Mode != REL {
		t.Value = cpu.peek(t.Addr)
	}

	t.Text = strings.TrimSpace(inst.Name + " " + operand)
}

// String renders the trace as a nestest log line, without the PPU column.
func (t Trace) String() string {
	r := t.Before

	if t.Interrupt != InterruptNone {
		return fmt.Sprintf("%04X  %-8s  %-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
			r.Pc, "", "-- "+t.Interrupt.String()+" --", r.A, r.X, r.Y, r.Status, r.Sp, t.Cycle)
	}

	hex := make([]string, len(t.Bytes))
	for i, b := range t.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}

	mark := ' '
	if !t.Inst.Legal {
		mark = '*'
	}

	return fmt.Sprintf("%04X  %-8s %c%-32sA:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		t.Pc, strings.Join(hex, " "), mark, t.Text, r.A, r.X, r.Y, r.Status, r.Sp, t.Cycle)
}
