package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	vault2pdf "github.com/alnah/go-vault2pdf"
	"github.com/alnah/go-vault2pdf/internal/assets"
	"github.com/alnah/go-vault2pdf/internal/config"
	"github.com/alnah/go-vault2pdf/internal/fileutil"
)

// Sentinel errors for the convert flow.
var (
	ErrNoInput          = errors.New("no input file given")
	ErrInputMissing     = errors.New("input file not found")
	ErrReadExport       = errors.New("failed to read export file")
	ErrInvalidExtension = errors.New("input must be a .json export")
)

// runConvert executes the default conversion flow.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if len(positional) == 0 {
		printConvertUsage(env.Stderr)
		return ErrNoInput
	}
	inputPath := positional[0]

	if !strings.EqualFold(filepath.Ext(inputPath), ".json") {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
	}
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrInputMissing, inputPath)
	}

	cfg := env.Config
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	exportJSON, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadExport, err)
	}

	outputPath := resolveOutputPath(inputPath, flags.output, cfg)

	title := flags.title
	if title == "" {
		title = cfg.Document.Title
	}
	browser := flags.browser
	if browser == "" {
		browser = cfg.Engine.Browser
	}

	loader, err := resolveAssetLoader(flags, cfg, env)
	if err != nil {
		return err
	}
	opts := []vault2pdf.Option{vault2pdf.WithNow(env.Now)}
	if loader != nil {
		opts = append(opts, vault2pdf.WithAssetLoader(loader))
	}

	svc := vault2pdf.New(opts...)

	if flags.verbose && !flags.quiet {
		fmt.Fprintf(env.Stdout, "Converting %s\n", inputPath)
	}

	err = svc.Convert(ctx, vault2pdf.Input{
		ExportJSON:  exportJSON,
		Title:       title,
		OutputPath:  outputPath,
		BrowserPath: browser,
		HTMLOnly:    flags.htmlOnly,
		Notes:       flags.notes || cfg.Notes.Enabled,
	})
	if err != nil {
		return err
	}

	if !flags.quiet {
		if flags.htmlOnly {
			fmt.Fprintf(env.Stdout, "Created %s\n", fileutil.ReplaceExt(outputPath, ".html"))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
		}
	}
	return nil
}

// resolveOutputPath picks the PDF destination: explicit flag, then the
// configured default directory, then next to the input file.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	pdfName := fileutil.ReplaceExt(filepath.Base(inputPath), ".pdf")
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, pdfName)
	}
	return fileutil.ReplaceExt(inputPath, ".pdf")
}

// resolveAssetLoader returns a loader override, or nil to keep the
// service default. The --asset-path flag wins over config.
func resolveAssetLoader(flags *convertFlags, cfg *config.Config, env *Environment) (assets.AssetLoader, error) {
	basePath := flags.assetPath
	if basePath == "" {
		basePath = cfg.Assets.BasePath
	}
	if basePath != "" {
		return assets.NewFilesystemLoader(basePath)
	}
	return env.AssetLoader, nil
}
