package nes

import (
	"testing"

	"github.com/pkg/errors"
)

// recDevice records register accesses.
type recDevice struct {
	regs   []uint16
	values []byte
}

func (d *recDevice) Read(reg uint16) byte {
	d.regs = append(d.regs, reg)
	return 0x5A
}

func (d *recDevice) Write(reg uint16, data byte) {
	d.regs = append(d.regs, reg)
	d.values = append(d.values, data)
}

// narrowCart claims to decode only the upper half of memory.
type narrowCart struct{ flatCart }

func (narrowCart) Window() (start, end uint16) { return 0x8000, 0xFFFF }

func TestRamMirroring(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)

	nes.Write(0x0001, 0xAB)
	nes.Write(0x1FFF, 0xCD)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{nes.Read(0x0801), byte(0xAB)},
		{nes.Read(0x1001), byte(0xAB)},
		{nes.Read(0x1801), byte(0xAB)},
		{nes.Read(0x07FF), byte(0xCD)},
		{nes.Ram[0x07FF], byte(0xCD)},
	}

	check(t, tests)
}

func TestPpuWindow(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)

	// Default stub: reads return the last value written to any register.
	nes.Write(0x2000, 0x55)
	stub := nes.Read(0x3FF8)
	nes.Write(0x2001, 0x12)
	stubAgain := nes.Read(0x2009)

	dev := &recDevice{}
	nes.MapPpu(dev)
	nes.Write(0x3456, 0x01)
	read := nes.Read(0x2002)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{stub, byte(0x55)},
		{stubAgain, byte(0x12)},
		{read, byte(0x5A)},
		{len(dev.regs), 2},
		{dev.regs[0], uint16(0x0006)},
		{dev.regs[1], uint16(0x0002)},
	}

	check(t, tests)
}

func TestApuWindowIsInert(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)

	nes.Write(0x4015, 0xFF)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{nes.Read(0x4015), byte(0x00)},
		{nes.Read(0x4016), byte(0x00)},
		{nes.Read(0x401F), byte(0x00)},
	}
	check(t, tests)

	dev := &recDevice{}
	nes.MapApu(dev)
	nes.Write(0x4017, 0x40)

	if len(dev.regs) != 1 || dev.regs[0] != 0x17 {
		t.Errorf("got registers %v, want [23]\n", dev.regs)
	}
}

func TestOamDmaRouting(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)

	apu := &recDevice{}
	nes.MapApu(apu)

	var pages []byte
	nes.SetDMAHandler(func(page byte) { pages = append(pages, page) })
	nes.Write(0x4014, 0x02)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{len(pages), 1},
		{pages[0], byte(0x02)},
		{len(apu.regs), 0},
		{nes.Ram[0x0014], byte(0x00)},
	}
	check(t, tests)

	// Restoring the no-op must not panic.
	nes.SetDMAHandler(nil)
	nes.Write(0x4014, 0x03)
}

func TestCartridgeDelegation(t *testing.T) {
	nes, cart := newTestBus(t, testEntry)
	cart.mem[0x4020] = 0x77

	nes.Write(0x6000, 0x09)
	nes.Write(0xFFF0, 0x0A)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{nes.Read(0x4020), byte(0x77)},
		{cart.mem[0x6000], byte(0x09)},
		{cart.mem[0xFFF0], byte(0x0A)},
	}

	check(t, tests)
}

func TestNewBusErrors(t *testing.T) {
	_, err := NewBus(Config{})
	if errors.Cause(err) != ErrNoCartridge {
		t.Errorf("no cartridge: got %v, want %v\n", err, ErrNoCartridge)
	}

	_, err = NewBus(Config{Cartridge: &narrowCart{}})
	if errors.Cause(err) != ErrMapperWindow {
		t.Errorf("narrow mapper: got %v, want %v\n", err, ErrMapperWindow)
	}

	prg := make([]byte, prgBankSize)
	cart, err := NewCartridge(prg)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewBus(Config{Cartridge: cart}); err != nil {
		t.Errorf("NROM cartridge rejected: %v\n", err)
	}
}

func TestPeekHasNoSideEffects(t *testing.T) {
	nes, _ := newTestBus(t, testEntry)
	nes.Write(0x2003, 0x99)

	dev := &recDevice{}
	nes.MapApu(dev)

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{nes.Peek(0x2002), byte(0x99)},
		{nes.Peek(0x4015), byte(0x00)},
		{len(dev.regs), 0},
	}
	check(t, tests)

	nes.MapPpu(&recDevice{})
	if got := nes.Peek(0x2002); got != 0x00 {
		t.Errorf("peek through a mapped PPU: got %#02x, want 0\n", got)
	}
}

func TestOamDmaCopiesPageAndStalls(t *testing.T) {
	nes, _ := newTestBus(t, testEntry,
		0xA9, 0x02,       // LDA #$02
		0x8D, 0x14, 0x40, // STA $4014
		0x8D, 0x14, 0x40, // STA $4014
	)
	for i := 0; i < 0x100; i++ {
		nes.Ram[0x0200+i] = byte(i)
	}

	var oam Oam
	nes.AttachOam(&oam)

	cpu := nes.Cpu
	cpu.Step()        // CYC 9 after
	odd := cpu.Step() // write lands on 9 + 4 = 13, CYC 9 + 4 + 514 = 527 after
	cpu.CycleCount++
	even := cpu.Step() // write lands on 528 + 4 = 532

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		{odd, 4 + oamDmaCycles + 1},
		{even, 4 + oamDmaCycles},
		{oam.Read(0x00), byte(0x00)},
		{oam.Read(0x05), byte(0x05)},
		{oam.Read(0xFF), byte(0xFF)},
		{oam[1].id, byte(0x05)},
	}

	check(t, tests)
}

func TestOamDmaParityCountsInstructionCycles(t *testing.T) {
	nes, _ := newTestBus(t, testEntry,
		0xA9, 0x02,       // LDA #$02
		0xA2, 0x00,       // LDX #$00
		0x9D, 0x14, 0x40, // STA $4014,X
		0x8D, 0x14, 0x40, // STA $4014
	)

	var oam Oam
	nes.AttachOam(&oam)

	cpu := nes.Cpu
	steps(cpu, 2) // CYC 11 after, odd
	indexed := cpu.Step()
	afterIndexed := cpu.CycleCount
	absolute := cpu.Step()

	tests := []struct {
		got  interface{}
		want interface{}
	}{
		// Write lands on 11 + 5 = 16, even.
		{indexed, 5 + oamDmaCycles},
		{afterIndexed, uint64(11 + 5 + oamDmaCycles)},
		// Write lands on 529 + 4 = 533, odd.
		{absolute, 4 + oamDmaCycles + 1},
		{cpu.Cycle(), cpu.CycleCount},
	}

	check(t, tests)
}
