package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sceneforge/sceneforge/internal/core/config"
	"github.com/sceneforge/sceneforge/internal/editor"
)

func main() {
	configPath := flag.String("config", "", "path to editor config (.yaml or .json)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rt := editor.NewRuntime(cfg)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	if err := rt.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting editor:", err)
		os.Exit(1)
	}

	<-stopCh
	cancel()
	if err := rt.Stop(); err != nil {
		fmt.Fprintln(os.Stderr, "Error stopping editor:", err)
	}
}
