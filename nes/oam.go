package nes

const (
	oamSprites = 64

	// CPU cycles held by one OAM DMA transfer, plus one on an odd cycle.
	oamDmaCycles = 513
)

// Oam is the PPU's object attribute memory: 64 sprites of four bytes each.
// Until a PPU exists it is only ever filled by OAM DMA.
type Oam [oamSprites]oamSprite

// oamSprite represents one entry, or sprite, in the Object Attribute memory.
type oamSprite struct {
	y         byte // Y position of the sprite
	id        byte // pattern memory ID
	attribute byte // flag specifying rendering attributes
	x         byte // X position of the sprite
}

// Read returns byte addr of sprite memory, in hardware byte order.
func (oam *Oam) Read(addr byte) byte {
	sprite := &oam[addr/4]

	var data byte
	switch addr % 4 {
	case 0:
		data = sprite.y
	case 1:
		data = sprite.id
	case 2:
		data = sprite.attribute
	case 3:
		data = sprite.x
	}

	return data
}

func (oam *Oam) Write(addr byte, data byte) {
	sprite := &oam[addr/4]

	switch addr % 4 {
	case 0:
		sprite.y = data
	case 1:
		sprite.id = data
	case 2:
		sprite.attribute = data
	case 3:
		sprite.x = data
	}
}

// AttachOam routes OAM DMA into oam. A write of page number N to $4014 copies
// $N00-$NFF into sprite memory and holds the CPU for the length of the copy.
func (b *Bus) AttachOam(oam *Oam) {
	b.SetDMAHandler(func(page byte) {
		base := uint16(page) << 8
		for i := 0; i < 4*oamSprites; i++ {
			oam.Write(byte(i), b.Read(base+uint16(i)))
		}

		stall := oamDmaCycles
		if b.Cpu.Cycle()%2 == 1 {
			stall++
		}
		b.Cpu.Stall(stall)
	})
}
