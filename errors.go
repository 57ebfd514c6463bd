package vault2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyExport      = errors.New("export document cannot be empty")
	ErrNoOutputPath     = errors.New("output path cannot be empty")
	ErrExportParse      = errors.New("failed to parse vault export")
	ErrTemplateMissing  = errors.New("HTML template not found")
	ErrStyleMissing     = errors.New("stylesheet not found")
	ErrEngineNotFound   = errors.New("no supported headless browser found")
	ErrConversionFailed = errors.New("headless browser failed to create the PDF")
	ErrWriteHTML        = errors.New("failed to write HTML file")
	ErrWriteStyle       = errors.New("failed to write stylesheet file")
	ErrNotesRender      = errors.New("notes rendering failed")
)
