package nes

import (
	"log"

	"github.com/pkg/errors"
)

// Main bus used by the CPU.
type Bus struct {
	Cpu  *Cpu6502      // NES CPU.
	Ram  [ramSize]byte // 2KB internal work RAM.
	Cart Mapper        // Cartridge, seen through its mapper.

	ppu Device          // PPU register window.
	apu Device          // APU and I/O register window.
	dma func(page byte) // OAM DMA trigger.
}

// Device is a memory-mapped peripheral. It receives the register offset
// within its window, after mirroring has been applied.
type Device interface {
	Read(reg uint16) byte
	Write(reg uint16, data byte)
}

// Config is the initial memory configuration of the machine.
type Config struct {
	Cartridge Mapper      // Required.
	Ppu       Device      // Optional, defaults to an open-bus stub.
	Apu       Device      // Optional, defaults to an inert stub.
	Logger    *log.Logger // Optional per-instruction trace log.
}

const (
	// RAM
	ramSize    int    = 0x0800
	ramMinAddr uint16 = 0x0000
	ramMaxAddr uint16 = 0x1FFF
	ramMirror  uint16 = 0x07FF // mirror every 2KB.

	// PPU
	ppuMinAddr uint16 = 0x2000
	ppuMaxAddr uint16 = 0x3FFF
	ppuMirror  uint16 = 0x0007 // mirror every 8 bytes.

	// APU and I/O
	apuMinAddr uint16 = 0x4000
	apuMaxAddr uint16 = 0x401F
	apuMask    uint16 = 0x001F

	// Writing a page number here copies that page to sprite memory.
	oamDmaAddr uint16 = 0x4014

	// Cartridge
	cartMinAddr uint16 = 0x4020
	cartMaxAddr uint16 = 0xFFFF
)

var (
	ErrNoCartridge  = errors.New("nes: no cartridge mapper")
	ErrMapperWindow = errors.New("nes: mapper does not cover the cartridge window")
)

// NewBus builds the CPU address space around a cartridge, connects a CPU to
// it and runs the reset sequence. Every configuration problem is reported
// here; stepping the result never fails.
func NewBus(cfg Config) (*Bus, error) {
	if cfg.Cartridge == nil {
		return nil, ErrNoCartridge
	}
	if w, ok := cfg.Cartridge.(Windowed); ok {
		start, end := w.Window()
		if start > cartMinAddr || end != cartMaxAddr {
			return nil, errors.Wrapf(ErrMapperWindow, "mapper window $%04X-$%04X", start, end)
		}
	}

	// Create a new CPU. Here we use a 6502.
	cpu := NewCpu6502()
	cpu.Logger = cfg.Logger

	// Attach devices to the bus.
	bus := &Bus{
		Cpu:  cpu,
		Cart: cfg.Cartridge,
		ppu:  cfg.Ppu,
		apu:  cfg.Apu,
		dma:  func(byte) {},
	}
	if bus.ppu == nil {
		bus.ppu = &ppuStub{}
	}
	if bus.apu == nil {
		bus.apu = inertDevice{}
	}

	// Connect this bus to the cpu.
	cpu.ConnectBus(bus)
	cpu.Reset()

	return bus, nil
}

// MapPpu wires a device into the PPU register window ($2000-$3FFF).
func (b *Bus) MapPpu(d Device) { b.ppu = d }

// MapApu wires a device into the APU and I/O window ($4000-$401F).
func (b *Bus) MapApu(d Device) { b.apu = d }

// SetDMAHandler installs the handler for writes to $4014. The written byte
// is the source page. A nil handler restores the no-op.
func (b *Bus) SetDMAHandler(h func(page byte)) {
	if h == nil {
		h = func(byte) {}
	}
	b.dma = h
}

// Used by the CPU to read data from the main bus at a specified address.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr <= ramMaxAddr:
		return b.Ram[addr&ramMirror]
	case addr <= ppuMaxAddr:
		return b.ppu.Read(addr & ppuMirror)
	case addr <= apuMaxAddr:
		return b.apu.Read(addr & apuMask)
	}

	return b.Cart.CpuRead(addr)
}

// Used by the CPU to write data to the main bus at a specified address.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= ramMaxAddr:
		b.Ram[addr&ramMirror] = data
	case addr <= ppuMaxAddr:
		b.ppu.Write(addr&ppuMirror, data)
	case addr == oamDmaAddr:
		b.dma(data)
	case addr <= apuMaxAddr:
		b.apu.Write(addr&apuMask, data)
	default:
		b.Cart.CpuWrite(addr, data)
	}
}

// Peek reads an address for diagnostics without touching device state.
// Register reads of a real PPU or APU can have side effects, so those
// windows only show through Peek while the stubs are mapped.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr >= ppuMinAddr && addr <= ppuMaxAddr:
		if p, ok := b.ppu.(*ppuStub); ok {
			return p.openBus
		}
		return 0x00
	case addr >= apuMinAddr && addr <= apuMaxAddr:
		return 0x00
	}
	return b.Read(addr)
}

// inertDevice ignores writes and reads as zero.
type inertDevice struct{}

func (inertDevice) Read(uint16) byte   { return 0x00 }
func (inertDevice) Write(uint16, byte) {}
