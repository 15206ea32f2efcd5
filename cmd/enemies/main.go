// Package main runs the enemy simulation once and prints its transcript.
package main

import (
	"flag"
	"log"
	"os"

	enemiescmd "go-enemy-drills/internal/cmd/enemies"
	"go-enemy-drills/internal/config"
)

func main() {
	log.SetPrefix("[ENEMIES] ")
	log.SetFlags(0)

	cfg, err := config.ParseEnemies(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := enemiescmd.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("enemies: %v", err)
	}
}
