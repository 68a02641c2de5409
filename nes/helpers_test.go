package nes

import (
	"os"
	"testing"
)

const (
	testEntry uint16 = 0x8000
	testNmi   uint16 = 0x9000
	testIrq   uint16 = 0xA000
)

// flatCart is 64KB of writable memory behind the cartridge window. It keeps
// every write it sees, in order.
type flatCart struct {
	mem    [0x10000]byte
	writes []byte
}

func (c *flatCart) CpuRead(addr uint16) byte { return c.mem[addr] }

func (c *flatCart) CpuWrite(addr uint16, data byte) {
	c.mem[addr] = data
	c.writes = append(c.writes, data)
}

func (c *flatCart) load(addr uint16, data ...byte) {
	for i, b := range data {
		c.mem[addr+uint16(i)] = b
	}
}

func (c *flatCart) setVector(vector, target uint16) {
	c.mem[vector] = byte(target)
	c.mem[vector+1] = byte(target >> 8)
}

// newTestBus returns a reset machine whose reset vector points at start,
// where program has been loaded.
func newTestBus(t *testing.T, start uint16, program ...byte) (*Bus, *flatCart) {
	t.Helper()

	cart := &flatCart{}
	cart.setVector(resetVectAddr, start)
	cart.setVector(nmiVectAddr, testNmi)
	cart.setVector(irqVectAddr, testIrq)
	cart.load(start, program...)

	nes, err := NewBus(Config{Cartridge: cart})
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}

	return nes, cart
}

// steps runs n instructions and returns the cycles they took.
func steps(cpu *Cpu6502, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += cpu.Step()
	}
	return total
}

func requireTestFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Skipf("missing test artifact %s", path)
	}
	return data
}

func check(t *testing.T, tests []struct {
	got  interface{}
	want interface{}
}) {
	t.Helper()

	for i, test := range tests {
		if test.got != test.want {
			t.Errorf("case %d: got %v, want %v\n", i, test.got, test.want)
		}
	}
}
