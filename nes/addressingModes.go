package nes

type AddressingMode int

const (
	IMP AddressingMode = iota // Implied
	ACC                       // Accumulator
	IMM                       // Immediate
	ZP0                       // Zero Page
	ZPX                       // Zero Page, X
	ZPY                       // Zero Page, Y
	REL                       // Relative
	ABS                       // Absolute
	ABX                       // Absolute, X
	ABY                       // Absolute, Y
	IND                       // Indirect (JMP only)
	IZX                       // Indexed Indirect, (zp,X)
	IZY                       // Indirect Indexed, (zp),Y
)

var addrModeNames = [...]string{"IMP", "ACC", "IMM", "ZP0", "ZPX", "ZPY", "REL", "ABS", "ABX", "ABY", "IND", "IZX", "IZY"}

func (m AddressingMode) String() string {
	if m < 0 || int(m) >= len(addrModeNames) {
		return "???"
	}
	return addrModeNames[m]
}

// Bytes returns how many operand bytes follow the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case IMP, ACC:
		return 0
	case ABS, ABX, ABY, IND:
		return 2
	default:
		return 1
	}
}

// operand is where an instruction's data lives once its addressing mode has
// been resolved.
type operand struct {
	addr    uint16 // Effective address; the branch target for REL
	implied bool   // No memory operand (implied and accumulator modes)
	crossed bool   // Indexing or branching changed the high byte
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// resolve computes the operand of the current instruction. The program counter
// points just past the opcode on entry and past the operand bytes on return.
func (cpu *Cpu6502) resolve(mode AddressingMode) operand {
	switch mode {
	case IMP, ACC:
		return operand{implied: true}

	case IMM:
		// The second byte of the instruction contains the operand.
		addr := cpu.Pc
		cpu.Pc++
		return operand{addr: addr}

	case ZP0:
		addr := uint16(cpu.read(cpu.Pc))
		cpu.Pc++
		return operand{addr: addr}

	case ZPX:
		// Indexing wraps within page zero.
		addr := uint16(cpu.read(cpu.Pc) + cpu.X)
		cpu.Pc++
		return operand{addr: addr}

	case ZPY:
		addr := uint16(cpu.read(cpu.Pc) + cpu.Y)
		cpu.Pc++
		return operand{addr: addr}

	case REL:
		// Signed displacement from the address of the next instruction.
		offset := int8(cpu.read(cpu.Pc))
		cpu.Pc++
		target := cpu.Pc + uint16(offset)
		return operand{addr: target, crossed: pageCrossed(target, cpu.Pc)}

	case ABS:
		addr := cpu.readWord(cpu.Pc)
		cpu.Pc += 2
		return operand{addr: addr}

	case ABX:
		base := cpu.readWord(cpu.Pc)
		cpu.Pc += 2
		addr := base + uint16(cpu.X)
		return operand{addr: addr, crossed: pageCrossed(addr, base)}

	case ABY:
		base := cpu.readWord(cpu.Pc)
		cpu.Pc += 2
		addr := base + uint16(cpu.Y)
		return operand{addr: addr, crossed: pageCrossed(addr, base)}

	case IND:
		// The pointer's high byte is fetched without carrying into the next
		// page: JMP ($10FF) reads $10FF and $1000.
		ptr := cpu.readWord(cpu.Pc)
		cpu.Pc += 2
		lo := cpu.read(ptr)
		hi := cpu.read(ptr&0xFF00 | uint16(byte(ptr)+1))
		return operand{addr: uint16(hi)<<8 | uint16(lo)}

	case IZX:
		// Zero page pointer at operand+X, both bytes within page zero.
		ptr := cpu.read(cpu.Pc) + cpu.X
		cpu.Pc++
		return operand{addr: cpu.readZeroPageWord(ptr)}

	case IZY:
		// Zero page pointer, then Y added to the 16-bit address it holds.
		ptr := cpu.read(cpu.Pc)
		cpu.Pc++
		base := cpu.readZeroPageWord(ptr)
		addr := base + uint16(cpu.Y)
		return operand{addr: addr, crossed: pageCrossed(addr, base)}
	}

	return operand{implied: true}
}
