package nes

// Mapper is the cartridge as the CPU sees it. It owns everything from $4020
// to $FFFF and receives addresses unchanged; how it banks its memory is its
// own business.
type Mapper interface {
	CpuRead(addr uint16) byte
	CpuWrite(addr uint16, data byte)
}

// Windowed is implemented by mappers that can report the address range they
// decode. NewBus rejects a mapper whose window does not cover $4020-$FFFF.
type Windowed interface {
	Window() (start, end uint16)
}
