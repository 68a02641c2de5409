package nes

// Mapper000 (NROM) maps fixed PRG banks with no switching.
type Mapper000 struct {
	PrgBanks byte // Number of 16KB PRG ROM banks, 1 or 2.
}

func NewMapper000(prgRomChunks byte) Mapper000 {
	return Mapper000{
		PrgBanks: prgRomChunks,
	}
}

// Address Mapping
//
// if 16KB ROM size:
// 	 0x8000-0xBFFF -> 0x0000-0x3FFF
//   0xC000-0xFFFF -> 0x0000-0x3FFF (mirror)
//
// if 32KB ROM size:
//   0x8000-0xFFFF -> 0x0000-0x7FFF

// cpuMapRead translates a CPU address in $8000-$FFFF to a PRG ROM offset.
func (m Mapper000) cpuMapRead(addr uint16) uint16 {
	if m.PrgBanks > 1 {
		return addr & 0x7FFF // 32KB ROM
	}
	return addr & 0x3FFF // 16KB ROM, need to mirror
}
