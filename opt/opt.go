package opt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sablelang/sable/internal"
	"github.com/sablelang/sable/internal/ir"
	tt "github.com/sablelang/sable/internal/types"
	"github.com/sablelang/sable/scanner"
)

// Engine is the surface the drivers below need: the simplification pass
// over a whole module plus per-rule opt-out.
type Engine interface {
	RunModule(mod *ir.Module) []tt.Rewrite
	IgnoreRule(rule string)
}

// Result is the outcome of optimizing one source file.
type Result struct {
	Path     string
	Types    *ir.TypeTable
	Module   *ir.Module
	Rewrites []tt.Rewrite
}

// New builds an engine from an optional configuration file.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	return internal.NewEngine(config.Rules)
}

// ProcessFiles optimizes each path in order and collects the results.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
) ([]Result, error) {
	var results []Result
	for _, path := range paths {
		res, err := ProcessPath(ctx, logger, engine, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, res...)
	}
	return results, nil
}

// ProcessPath optimizes one file, or every IR file under one directory.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
) ([]Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		res, err := ProcessFile(engine, path)
		if err != nil {
			return nil, err
		}
		return []Result{res}, nil
	}

	files, err := scanner.New(path, ".sir").Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var results []Result
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		res, err := ProcessFile(engine, file.Path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", file.Path), zap.Error(err))
			}
			return nil, err
		}
		results = append(results, res)
		_ = bar.Add(1)
	}
	fmt.Println()

	return results, nil
}

// ProcessFile parses, verifies and optimizes a single IR file.
func ProcessFile(engine Engine, path string) (Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	res, err := ProcessSource(engine, source)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// ProcessSource parses, verifies and optimizes IR text.
func ProcessSource(engine Engine, source []byte) (Result, error) {
	types := ir.NewTypeTable()
	mod, err := ir.ParseModule(types, string(source))
	if err != nil {
		return Result{}, fmt.Errorf("error parsing module: %w", err)
	}
	if err := ir.VerifyModule(mod); err != nil {
		return Result{}, fmt.Errorf("malformed module: %w", err)
	}

	rewrites := engine.RunModule(mod)
	return Result{Types: types, Module: mod, Rewrites: rewrites}, nil
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == ".sir"
}

// Config represents the overall configuration with a name and a map of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
