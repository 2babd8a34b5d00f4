// Package main starts the FlaskHub landing page server.
//
// With -export-dir it writes the page and its assets to disk instead of
// serving them.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	landingcmd "github.com/flaskhub/landing/internal/cmd/landing"
	"github.com/flaskhub/landing/internal/platform/config"
)

func main() {
	cfg, err := landingcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[LANDING] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := landingcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
