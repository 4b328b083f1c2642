package main

import (
	"fmt"

	"github.com/varkala/alog"
)

func main() {
	// A writer accumulates fragmented writes into one record
	w := alog.NewWriter("Example", alog.PriorityInfo)
	fmt.Fprintf(w, "starting up, pid=%d", 4242)
	fmt.Fprintf(w, " mode=%s", "demo")
	_ = w.Close() // delivers the record

	// One-shot helpers, one record per call
	alog.Println("Hello via helper!")
	alog.Eprintln("Error via helper!")
	alog.Logf(alog.PriorityWarn, "Example", "disk %d%% full", 91)

	// Structure dump at DEBUG priority
	alog.Dump(struct {
		Addr    string
		Retries int
	}{"10.0.0.7:443", 3})

	// Builder with config-style construction
	cfg := alog.DefaultConfig()
	cfg.Tag = "Example"
	cfg.Priority = "debug"

	dw, err := alog.NewWriterFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer dw.Close()

	// A single oversized write is split across several records
	for i := 0; i < 200; i++ {
		fmt.Fprintf(dw, "chunk %03d of a very long record; ", i)
	}
}
