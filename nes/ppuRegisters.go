package nes

// ppuStub stands in for the PPU until it exists. Every read of $2000-$3FFF
// returns the open-bus latch: the last value written to any PPU register.
type ppuStub struct {
	openBus byte
}

func (p *ppuStub) Read(reg uint16) byte {
	return p.openBus
}

func (p *ppuStub) Write(reg uint16, data byte) {
	p.openBus = data
}
