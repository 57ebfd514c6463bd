package vault2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-vault2pdf/internal/assets"
	"github.com/alnah/go-vault2pdf/internal/fileutil"
)

// DefaultTitle is used when no document title is provided.
const DefaultTitle = "Bitwarden Vault Overview"

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Input contains conversion parameters.
type Input struct {
	ExportJSON  []byte // Raw export document (required)
	Title       string // Document title (default: DefaultTitle)
	OutputPath  string // PDF destination (required)
	BrowserPath string // Explicit engine binary; skips discovery when set
	HTMLOnly    bool   // Stop after writing the HTML document
	Notes       bool   // Append the Markdown notes appendix
}

// Option configures a Service.
type Option func(*Service)

// WithAssetLoader overrides the embedded template/style loader.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(s *Service) {
		s.renderer = NewRenderer(loader)
	}
}

// WithHost overrides platform detection for engine discovery.
func WithHost(host Host) Option {
	return func(s *Service) {
		s.host = host
	}
}

// WithRunner overrides subprocess execution (e.g., by tests).
func WithRunner(runner CommandRunner) Option {
	return func(s *Service) {
		s.converter = &EngineConverter{Runner: runner}
	}
}

// WithNow overrides the clock used for the generation timestamp.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service orchestrates the export-to-PDF pipeline. The flow is fully
// sequential: normalize, render, locate the engine, invoke it.
type Service struct {
	renderer  *Renderer
	notes     *NotesRenderer
	host      Host
	converter *EngineConverter
	now       func() time.Time
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{now: time.Now}

	for _, opt := range opts {
		opt(s)
	}

	if s.renderer == nil {
		s.renderer = NewRenderer(assets.NewEmbeddedLoader())
	}
	if s.notes == nil {
		s.notes = NewNotesRenderer()
	}
	if s.host == nil {
		s.host = DetectHost()
	}
	if s.converter == nil {
		s.converter = NewEngineConverter()
	}

	return s
}

// Convert runs the full pipeline and writes the PDF to
// input.OutputPath. The HTML document and stylesheet are materialized
// next to the PDF and left in place for inspection. Asset loading
// failures abort before the engine is located or invoked. The context
// bounds the engine subprocess; no default timeout is imposed.
func (s *Service) Convert(ctx context.Context, input Input) error {
	if len(input.ExportJSON) == 0 {
		return ErrEmptyExport
	}
	if input.OutputPath == "" {
		return ErrNoOutputPath
	}

	export, err := ParseExport(input.ExportJSON)
	if err != nil {
		return err
	}
	accounts := CollectAccounts(export)

	title := input.Title
	if title == "" {
		title = DefaultTitle
	}

	// Load the stylesheet up front so a missing asset fails before
	// anything is written or executed.
	css, err := s.renderer.Style()
	if err != nil {
		return err
	}

	outputPath, err := filepath.Abs(input.OutputPath)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	htmlPath := fileutil.ReplaceExt(outputPath, ".html")
	cssPath := fileutil.ReplaceExt(outputPath, ".css")

	generated := s.now().Format(timestampLayout)
	doc, err := s.renderer.RenderDocument(accounts, title, generated, fileutil.FileURI(cssPath))
	if err != nil {
		return err
	}

	if input.Notes {
		doc, err = s.notes.AppendNotes(doc, accounts)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	// #nosec G306 -- the stylesheet and HTML are meant to be readable by the engine
	if err := os.WriteFile(cssPath, []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteStyle, err)
	}
	// #nosec G306
	if err := os.WriteFile(htmlPath, []byte(doc), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	if input.HTMLOnly {
		return nil
	}

	browser := input.BrowserPath
	if browser == "" {
		browser, err = FindBrowser(s.host)
		if err != nil {
			return err
		}
	}

	return s.converter.ToPDF(ctx, browser, htmlPath, outputPath)
}
