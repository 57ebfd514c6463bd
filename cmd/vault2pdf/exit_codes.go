package main

import (
	"errors"

	vault2pdf "github.com/alnah/go-vault2pdf"
	"github.com/alnah/go-vault2pdf/internal/assets"
	"github.com/alnah/go-vault2pdf/internal/config"
)

// Process exit codes.
const (
	ExitSuccess = 0 // Conversion completed
	ExitGeneral = 1 // Unclassified failure
	ExitUsage   = 2 // Bad invocation or malformed input
	ExitIO      = 3 // Filesystem failure
	ExitEngine  = 4 // Engine discovery or invocation failure
)

// ErrUsage marks command-line mistakes (bad flags, missing arguments).
var ErrUsage = errors.New("usage error")

// exitCodeFor maps an error to a process exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, vault2pdf.ErrExportParse),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, assets.ErrInvalidBasePath):
		return ExitUsage
	case errors.Is(err, ErrInputMissing),
		errors.Is(err, ErrReadExport),
		errors.Is(err, vault2pdf.ErrWriteHTML),
		errors.Is(err, vault2pdf.ErrWriteStyle),
		errors.Is(err, vault2pdf.ErrTemplateMissing),
		errors.Is(err, vault2pdf.ErrStyleMissing):
		return ExitIO
	case errors.Is(err, vault2pdf.ErrEngineNotFound),
		errors.Is(err, vault2pdf.ErrConversionFailed):
		return ExitEngine
	default:
		return ExitGeneral
	}
}
