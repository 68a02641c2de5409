package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/n-ulricksen/nes-cpu/nes"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Command line flags
var (
	flagRom     string
	flagPc      string
	flagSteps   int
	flagLogging bool
)

func main() {
	parseFlags()

	if flagRom == "" {
		flag.Usage()
		os.Exit(2)
	}

	cart, err := loadCartridge(flagRom)
	if err != nil {
		log.Fatal(err)
	}

	var logger *log.Logger
	if flagLogging {
		logger = log.New(os.Stderr, "cpu: ", log.Lmicroseconds)
	}

	nesEmulator, err := nes.NewBus(nes.Config{Cartridge: cart, Logger: logger})
	if err != nil {
		log.Fatal(errors.Wrap(err, "building bus"))
	}

	// Sprite memory only exists to take OAM DMA writes.
	var oam nes.Oam
	nesEmulator.AttachOam(&oam)

	// Start somewhere other than the reset vector, e.g. $C000 for nestest.
	if flagPc != "" {
		pc, err := strconv.ParseUint(flagPc, 16, 16)
		if err != nil {
			log.Fatal(errors.Wrapf(err, "bad -pc %q", flagPc))
		}
		nesEmulator.Cpu.Pc = uint16(pc)
	}

	width := 0
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}

	start := time.Now()
	for i := 0; i < flagSteps; i++ {
		_, t := nesEmulator.Cpu.StepTrace()
		fmt.Println(clip(t.String(), width))

		if nesEmulator.Cpu.Jammed() {
			fmt.Printf("CPU jammed at $%04X\n", nesEmulator.Cpu.Pc)
			break
		}
	}

	if flagLogging {
		nes.TimeTrack(start, nesEmulator.Cpu.CycleCount)
	}
}

func parseFlags() {
	flag.StringVar(&flagRom, "rom", "", "iNES image or raw PRG ROM to run")
	flag.StringVar(&flagPc, "pc", "", "start address in hex, instead of the reset vector")
	flag.IntVar(&flagSteps, "n", 10000, "number of steps to trace")
	flag.BoolVar(&flagLogging, "log", false, "enable logging")

	flag.Parse()
}

func loadCartridge(path string) (*nes.Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading rom")
	}

	prg, err := nes.PrgFromImage(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	cart, err := nes.NewCartridge(prg)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return cart, nil
}

// clip cuts a trace line to the terminal width. Zero means no limit.
func clip(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	return s[:width]
}
