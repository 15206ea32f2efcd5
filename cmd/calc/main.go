// Package main runs the three concurrent computations.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	calccmd "go-enemy-drills/internal/cmd/calc"
	"go-enemy-drills/internal/config"
)

func main() {
	log.SetPrefix("[CALC] ")
	log.SetFlags(0)

	cfg, err := config.ParseCalc(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := calccmd.Run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("calc: %v", err)
	}
}
