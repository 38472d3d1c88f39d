package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"iconsmith/config"
	"iconsmith/icons"
	"iconsmith/watcher"
)

func main() {
	fmt.Println("Iconsmith - App Icon Generator")
	fmt.Println("==============================")

	configPath := flag.String("config", config.DefaultPath, "path to yaml config file")
	source := flag.String("source", "", "source image path (overrides config)")
	output := flag.String("output", "", "output root directory (overrides config)")
	atomic := flag.Bool("atomic", false, "write files via temp-and-rename")
	watch := flag.Bool("watch", false, "keep running and regenerate when the source image changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	if *source != "" {
		cfg.Source = *source
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *atomic {
		cfg.Atomic = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	gen := icons.New(cfg)

	result, err := gen.Generate()
	if err != nil {
		log.Printf("❌ Error: %v", err)
		var notFound *icons.SourceNotFoundError
		if errors.As(err, &notFound) {
			log.Printf("Please save your logo image as: %s", notFound.Path)
		}
		if !*watch {
			os.Exit(1)
		}
	} else {
		log.Printf("✅ Generated %d icons under %s", len(result.Written), cfg.Output)
	}

	if !*watch {
		return
	}

	w, err := watcher.New(cfg.Source, gen)
	if err != nil {
		log.Fatalf("❌ Failed to create watcher: %v", err)
	}
	if err := w.Start(); err != nil {
		log.Fatalf("❌ Failed to start watcher: %v", err)
	}

	go func() {
		for outcome := range w.Outcomes() {
			if outcome.Err != nil {
				log.Printf("❌ Regeneration failed: %v", outcome.Err)
				continue
			}
			log.Printf("✅ Regenerated %d icons under %s", len(outcome.Result.Written), cfg.Output)
		}
	}()

	log.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	w.Stop()
}
