package nes

import (
	"testing"
)

// resolveAt places operand bytes at $0200 and resolves them in the given mode.
func resolveAt(t *testing.T, mode AddressingMode, operandBytes ...byte) (*Bus, operand) {
	t.Helper()

	nes, _ := newTestBus(t, testEntry)
	copy(nes.Ram[0x0200:], operandBytes)
	nes.Cpu.Pc = 0x0200

	return nes, nes.Cpu.resolve(mode)
}

////////////////////////////////////////////////////////////////
// Addressing Modes
func TestAmIMP(t *testing.T) {
	nes, op := resolveAt(t, IMP)

	if !op.implied || nes.Cpu.Pc != 0x0200 {
		t.Errorf("got %+v PC=%#04x\n", op, nes.Cpu.Pc)
	}
}

func TestAmIMM(t *testing.T) {
	nes, op := resolveAt(t, IMM, 0x42)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{op.addr, uint16(0x0200)},
		{nes.Cpu.Pc, uint16(0x0201)},
		{op.implied, false},
	}
	check(t, tests)
}

func TestAmREL(t *testing.T) {
	_, back := resolveAt(t, REL, 0x80)
	_, fwd := resolveAt(t, REL, 0x10)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{back.addr, uint16(0x0181)},
		{back.crossed, true},
		{fwd.addr, uint16(0x0211)},
		{fwd.crossed, false},
	}
	check(t, tests)
}

func TestAmZP0(t *testing.T) {
	nes, op := resolveAt(t, ZP0, 0x42)

	if op.addr != 0x0042 || nes.Cpu.Pc != 0x0201 {
		t.Errorf("got %+v PC=%#04x\n", op, nes.Cpu.Pc)
	}
}

func TestAmZPX(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	nes.Ram[0x0200] = 0xF8
	nes.Cpu.Pc = 0x0200
	nes.Cpu.X = 0x10

	// Wraps within page zero.
	if op := nes.Cpu.resolve(ZPX); op.addr != 0x0008 || op.crossed {
		t.Errorf("got %+v, want $0008\n", op)
	}
}

func TestAmZPY(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	nes.Ram[0x0200] = 0xFF
	nes.Cpu.Pc = 0x0200
	nes.Cpu.Y = 0x01

	if op := nes.Cpu.resolve(ZPY); op.addr != 0x0000 {
		t.Errorf("got %+v, want $0000\n", op)
	}
}

func TestAmABS(t *testing.T) {
	nes, op := resolveAt(t, ABS, 0x34, 0x12)

	if op.addr != 0x1234 || nes.Cpu.Pc != 0x0202 {
		t.Errorf("got %+v PC=%#04x\n", op, nes.Cpu.Pc)
	}
}

func TestAmABX(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	copy(nes.Ram[0x0200:], []byte{0xFF, 0x12})
	nes.Cpu.Pc = 0x0200
	nes.Cpu.X = 0x01

	op := nes.Cpu.resolve(ABX)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{op.addr, uint16(0x1300)},
		{op.crossed, true},
		{nes.Cpu.Pc, uint16(0x0202)},
	}
	check(t, tests)
}

func TestAmABY(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	copy(nes.Ram[0x0200:], []byte{0x00, 0x12})
	nes.Cpu.Pc = 0x0200
	nes.Cpu.Y = 0x01

	if op := nes.Cpu.resolve(ABY); op.addr != 0x1201 || op.crossed {
		t.Errorf("got %+v, want $1201 without crossing\n", op)
	}
}

func TestAmIND(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	copy(nes.Ram[0x0200:], []byte{0xFF, 0x03})
	nes.Ram[0x03FF] = 0x34
	nes.Ram[0x0300] = 0x12
	nes.Ram[0x0400] = 0x99
	nes.Cpu.Pc = 0x0200

	// The high byte comes from $0300, not $0400.
	if op := nes.Cpu.resolve(IND); op.addr != 0x1234 {
		t.Errorf("got %#04x, want 0x1234\n", op.addr)
	}
}

func TestAmIZX(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	nes.Ram[0x0200] = 0xFE
	nes.Ram[0x00FF] = 0x00
	nes.Ram[0x0000] = 0x05
	nes.Cpu.Pc = 0x0200
	nes.Cpu.X = 0x01

	if op := nes.Cpu.resolve(IZX); op.addr != 0x0500 {
		t.Errorf("got %#04x, want 0x0500\n", op.addr)
	}
}

func TestAmIZY(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	nes.Ram[0x0200] = 0x20
	nes.Ram[0x0020] = 0xFF
	nes.Ram[0x0021] = 0x04
	nes.Ram[0x0201] = 0xFF
	nes.Ram[0x00FF] = 0x10
	nes.Ram[0x0000] = 0x03
	nes.Cpu.Pc = 0x0200
	nes.Cpu.Y = 0x01

	first := nes.Cpu.resolve(IZY)
	wrapped := nes.Cpu.resolve(IZY)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{first.addr, uint16(0x0500)},
		{first.crossed, true},
		{wrapped.addr, uint16(0x0311)}, // pointer $FF/$00
		{wrapped.crossed, false},
	}
	check(t, tests)
}
