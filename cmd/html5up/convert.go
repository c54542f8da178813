package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	html5up "github.com/alnah/go-html5up"
	"github.com/alnah/go-html5up/internal/config"
	"github.com/alnah/go-html5up/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input file specified")
)

// runConvert reads the input document, converts it, and writes the result.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	content, err := fileutil.ReadTextFile(inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	svc := html5up.New()
	converted, err := svc.Convert(ctx, html5up.Input{HTML: content, Lang: cfg.Lang})
	if err != nil {
		return fmt.Errorf("converting %s: %w", inputPath, err)
	}

	if err := fileutil.WriteTextFile(cfg.Output.Path, converted); err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converted %s -> %s in %v\n",
			inputPath, cfg.Output.Path, time.Since(start).Round(time.Millisecond))
	} else if !flags.quiet {
		fmt.Printf("Converted %s -> %s\n", inputPath, cfg.Output.Path)
	}

	return nil
}

// mergeFlags overlays explicit CLI flags onto the config. Empty flag
// values mean "not set" and leave the config value in place.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.lang != "" {
		cfg.Lang = flags.lang
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if cfg.Lang == "" {
		cfg.Lang = config.DefaultLang
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = config.DefaultOutputPath
	}
}

// resolveInputPath picks the input file from positional args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.Default != "" {
		return cfg.Input.Default, nil
	}
	return "", ErrNoInput
}
