// Package main provides the vtc-go binary entry point: a compiler
// turning component markup files into Go virtual-tree construction
// code
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	compiler "vtc-go/packages/compiler/src"
	"vtc-go/packages/compiler/src/config"
	"vtc-go/packages/compiler/src/schema"
)

const (
	Version         = "0.1.0"
	markupExtension = ".vtx"
)

var (
	configPath string
	outDir     string
	manifests  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "vtc-go",
		Short:   "Compile component markup into Go virtual-tree code",
		Version: Version,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a vtc config file")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory for generated files")
	rootCmd.PersistentFlags().StringArrayVarP(&manifests, "manifest", "m", nil, "component schema manifest (repeatable)")

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [paths...]",
		Short: "Compile markup files once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			options, registry, err := loadEnvironment()
			if err != nil {
				return err
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			failed := 0
			for _, file := range collectMarkupFiles(paths, logger) {
				if !compileFile(logger, registry, options, file) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed to compile", failed)
			}
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Watch markup files and recompile on change",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			options, registry, err := loadEnvironment()
			if err != nil {
				return err
			}
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			defer watcher.Close()

			for _, path := range paths {
				if err := watcher.Add(path); err != nil {
					return fmt.Errorf("watching %s: %w", path, err)
				}
			}

			for _, file := range collectMarkupFiles(paths, logger) {
				compileFile(logger, registry, options, file)
			}
			logger.Info("watching for changes", "paths", strings.Join(paths, ", "))

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					if filepath.Ext(event.Name) != markupExtension {
						continue
					}
					compileFile(logger, registry, options, event.Name)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					logger.Error("watch error", "error", err)
				}
			}
		},
	}
}

func newLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, nil)
	return slog.New(handler).With("build_id", uuid.NewString())
}

// loadEnvironment resolves options and the schema registry from the
// config file and command-line flags
func loadEnvironment() (*config.Options, *schema.ManifestRegistry, error) {
	options := config.DefaultOptions()
	if configPath != "" {
		loaded, err := config.LoadOptions(configPath)
		if err != nil {
			return nil, nil, err
		}
		options = loaded
	}
	if outDir != "" {
		options.OutDir = outDir
	}
	options.Manifests = append(options.Manifests, manifests...)

	registry := schema.NewManifestRegistry(options.RuntimeAlias)
	for _, manifest := range options.Manifests {
		if err := registry.LoadManifest(manifest); err != nil {
			return nil, nil, err
		}
	}
	return options, registry, nil
}

// collectMarkupFiles walks the given paths for markup sources
func collectMarkupFiles(paths []string, logger *slog.Logger) []string {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Error("cannot stat path", "path", path, "error", err)
			continue
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if filepath.Ext(p) == markupExtension {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			logger.Error("walk failed", "path", path, "error", err)
		}
	}
	return files
}

// compileFile compiles one markup file and writes the generated Go
// source next to it or into the configured output directory
func compileFile(logger *slog.Logger, registry schema.ComponentSchemaRegistry, options *config.Options, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("cannot read source", "path", path, "error", err)
		return false
	}

	result := compiler.NewCompiler(registry, options).Compile(string(data), path)
	if !result.Valid() {
		for _, parseErr := range result.Errors {
			logger.Error("compile error", "path", path, "kind", parseErr.Kind.String(), "error", parseErr.String())
		}
		return false
	}

	target := strings.TrimSuffix(path, markupExtension) + ".gen.go"
	if options.OutDir != "" {
		target = filepath.Join(options.OutDir, filepath.Base(target))
	}
	if err := os.WriteFile(target, []byte(result.Code), 0o644); err != nil {
		logger.Error("cannot write output", "path", target, "error", err)
		return false
	}
	logger.Info("compiled", "source", path, "target", target)
	return true
}
