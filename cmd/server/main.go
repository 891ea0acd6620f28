package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/noteskeeper/internal/logging"
	"github.com/dmitrijs2005/noteskeeper/internal/server"
	"github.com/dmitrijs2005/noteskeeper/internal/server/config"
)

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.New(logging.Mode(cfg.LogMode), cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := server.NewApp(cfg, log).Run(context.Background()); err != nil {
		log.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}
