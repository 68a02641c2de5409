package nes

import (
	"bytes"

	"github.com/pkg/errors"
)

const (
	prgBankSize = 0x4000 // 16KB
	prgRamSize  = 0x2000 // 8KB

	prgRamMinAddr uint16 = 0x6000
	prgRamMaxAddr uint16 = 0x7FFF
	prgRomMinAddr uint16 = 0x8000
)

var ErrPrgSize = errors.New("nes: PRG ROM must be 16KB or 32KB")

// Cartridge is an NROM board: up to 32KB of fixed PRG ROM and 8KB of PRG RAM.
type Cartridge struct {
	mapper Mapper000
	prg    []byte
	prgRam [prgRamSize]byte
}

// NewCartridge builds an NROM cartridge from raw PRG ROM data.
func NewCartridge(prg []byte) (*Cartridge, error) {
	if len(prg) != prgBankSize && len(prg) != 2*prgBankSize {
		return nil, errors.Wrapf(ErrPrgSize, "got %d bytes", len(prg))
	}

	return &Cartridge{
		mapper: NewMapper000(byte(len(prg) / prgBankSize)),
		prg:    append([]byte(nil), prg...),
	}, nil
}

// Window reports that the cartridge decodes the whole cartridge space.
func (c *Cartridge) Window() (start, end uint16) {
	return cartMinAddr, cartMaxAddr
}

// Communicate with main (CPU) bus. Nothing answers below $6000.
func (c *Cartridge) CpuRead(addr uint16) byte {
	switch {
	case addr >= prgRomMinAddr:
		return c.prg[c.mapper.cpuMapRead(addr)]
	case addr >= prgRamMinAddr:
		return c.prgRam[addr-prgRamMinAddr]
	}
	return 0x00
}

// ROM ignores writes; PRG RAM keeps them.
func (c *Cartridge) CpuWrite(addr uint16, data byte) {
	if addr >= prgRamMinAddr && addr <= prgRamMaxAddr {
		c.prgRam[addr-prgRamMinAddr] = data
	}
}

var inesMagic = []byte("NES\x1A")

// PrgFromImage returns the PRG ROM of an iNES image, or the data itself when
// it carries no iNES header. Only the PRG location is decoded; CHR data and
// mapper numbers are not looked at.
func PrgFromImage(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, inesMagic) {
		return data, nil
	}
	if len(data) < 16 {
		return nil, errors.New("nes: truncated iNES header")
	}

	start := 16
	if data[6]&0x04 != 0 {
		start += 512 // trainer
	}
	end := start + int(data[4])*prgBankSize
	if end > len(data) {
		return nil, errors.Errorf("nes: iNES image declares %d PRG banks but holds %d bytes", data[4], len(data))
	}

	return data[start:end], nil
}
