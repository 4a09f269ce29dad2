// Package main builds a Koszul-style double complex, materializes it lazily
// and reports its ranges, islands and completeness verdict.
//
// It reads config from flags/env and writes the report to stdout.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	democmd "github.com/katalvlaran/homalg/internal/cmd/complexdemo"
)

func main() {
	cfg, err := democmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[COMPLEXDEMO] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := democmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}
