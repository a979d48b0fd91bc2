// Command nes is a headless runner: it loads a ROM, drives the console's
// scheduler, and logs frame statistics instead of rendering. Host UI is
// explicitly out of scope for the core; this exists to exercise it from
// a terminal.
package main

import (
	"flag"
	"io/ioutil"
	"log"

	"github.com/coffeemakr/nesgo/nes"
)

func main() {
	romPath := flag.String("rom", "", "path to an iNES ROM file")
	trace := flag.Bool("trace", false, "log every retired CPU instruction to ./logs")
	frames := flag.Int("frames", 0, "number of frames to run before exiting (0 = run forever)")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("missing -rom")
	}

	data, err := ioutil.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	console := nes.NewConsole(*trace)

	frameCount := 0
	console.AddObserver(func(signal string, payload interface{}) {
		switch signal {
		case "frame-ready":
			frameCount++
			if frameCount%60 == 0 {
				log.Printf("frame %d, cpu cycles %d", frameCount, console.CPU().Cycles)
			}
		case "nes-reset":
			log.Printf("console reset, pc=$%04X", console.CPU().Pc)
		}
	})

	if err := console.LoadROM(data); err != nil {
		log.Fatalf("loading ROM: %v", err)
	}

	for *frames == 0 || frameCount < *frames {
		console.Step()
	}
}
