// Package main runs the ownership demos.
package main

import (
	"flag"
	"log"
	"os"

	memorycmd "go-enemy-drills/internal/cmd/memory"
	"go-enemy-drills/internal/config"
)

func main() {
	log.SetPrefix("[MEMORY] ")
	log.SetFlags(0)

	cfg, err := config.ParseMemory(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := memorycmd.Run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("memory: %v", err)
	}
}
