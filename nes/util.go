package nes

import (
	"log"
	"regexp"
	"runtime"
	"time"
)

// ntscCpuHz is the 2A03 clock on NTSC consoles.
const ntscCpuHz = 1789773

var runtimeFunc = regexp.MustCompile(`^.*\.(.*)$`)

// TimeTrack logs how long the calling function took to emulate cycles CPU
// cycles, and how that compares with a real console.
//
// Function time tracking thanks to:
// https://stackoverflow.com/questions/45766572/is-there-an-efficient-way-to-calculate-execution-time-in-golang
func TimeTrack(start time.Time, cycles uint64) {
	elapsed := time.Since(start)

	// Skip this function, and fetch the PC and file for its parent.
	pc, _, _, _ := runtime.Caller(1)
	name := runtimeFunc.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")

	emulated := time.Duration(float64(cycles) / ntscCpuHz * float64(time.Second))
	log.Printf("%s took %s for %d cycles (%s of console time)", name, elapsed, cycles, emulated)
}
