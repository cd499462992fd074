package main

/**
 * nepalify - Roman to Devanagari (Nepali) transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/khojproject/nepalify/cliparse"
	"github.com/khojproject/nepalify/nepalify"
	"github.com/khojproject/nepalify/search"
	"github.com/khojproject/nepalify/server"
)

func main() {
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	converterConfig := nepalify.Config{
		LearningsPath:  cfg.LearningsPath,
		TrailingHalant: cfg.TrailingHalant,
		Logger:         logger,
	}
	if cfg.LearnedJSON != "" {
		converterConfig.LearnedPaths = []string{cfg.LearnedJSON}
	}

	converter, err := nepalify.New(converterConfig)
	if err != nil {
		slog.Error("converter init failed", "error", err)
		os.Exit(1)
	}
	defer converter.Close()

	ctx := context.Background()

	switch {
	case cfg.Learn:
		pattern, word := cfg.Args[0], cfg.Args[1]
		if err := converter.Learn(ctx, pattern, word); err != nil {
			slog.Error("learn failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Learnt %s => %s\n", pattern, word)

	case cfg.Unlearn:
		if err := converter.Unlearn(ctx, cfg.Args[0]); err != nil {
			slog.Error("unlearn failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Unlearnt %s\n", cfg.Args[0])

	case cfg.Import:
		imported, err := converter.ImportLearnings(ctx, cfg.Args[0])
		if err != nil {
			slog.Error("import failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %d learnings\n", imported)

	case cfg.Export:
		if err := converter.ExportLearnings(ctx, cfg.Args[0]); err != nil {
			slog.Error("export failed", "error", err)
			os.Exit(1)
		}
		fmt.Println("Finished exporting to file")

	case cfg.Serve:
		if err := serve(ctx, cfg, converter); err != nil {
			slog.Error("server closed", "error", err)
			os.Exit(1)
		}

	default:
		if len(cfg.Args) == 0 {
			slog.Error("nothing to do: give text to convert, or a mode flag")
			os.Exit(1)
		}
		for _, arg := range cfg.Args {
			result := converter.ConvertResult(ctx, arg)
			if result.Converted {
				fmt.Printf("%s => %s\n", result.Input, result.Output)
			} else {
				fmt.Println(result.Output)
			}
		}
	}
}

func serve(ctx context.Context, cfg cliparse.Config, converter *nepalify.Converter) error {
	store, err := search.Open(cfg.VoterDB)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Load(ctx)
	if err != nil {
		return err
	}
	slog.Info("voter roll loaded", "records", len(records))

	api := server.New(converter, records, slog.Default())
	httpServer := http.Server{
		Handler: api.Handler(),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ctrlc
		httpServer.Shutdown(context.Background())
	}()

	slog.Info("Listening", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
