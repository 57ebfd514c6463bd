package vault2pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alnah/go-vault2pdf/internal/fileutil"
)

// CommandRunner abstracts subprocess execution to enable testing
// without launching a real browser.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// headlessFlags are tried in order: the current flag spelling first,
// then the legacy one still required by older engine releases.
var headlessFlags = []string{"--headless=new", "--headless"}

// EngineConverter drives a headless browser binary to print an HTML
// document to PDF.
type EngineConverter struct {
	Runner CommandRunner
}

// NewEngineConverter creates an EngineConverter with a real command
// runner.
func NewEngineConverter() *EngineConverter {
	return &EngineConverter{Runner: &ExecRunner{}}
}

// ToPDF prints the HTML document at htmlPath to outputPath using the
// engine at browserPath. Each headless flag variant is attempted in
// turn and the first zero exit wins. Success is determined solely by
// the subprocess exit status; the output file is never inspected. When
// every variant fails, the last attempt's diagnostic output is carried
// in the returned error.
func (c *EngineConverter) ToPDF(ctx context.Context, browserPath, htmlPath, outputPath string) error {
	var lastStdout, lastStderr string
	var lastErr error

	for _, headless := range headlessFlags {
		stdout, stderr, err := c.Runner.Run(ctx, browserPath,
			headless,
			"--disable-gpu",
			"--print-to-pdf="+outputPath,
			"--print-to-pdf-no-header",
			fileutil.FileURI(htmlPath),
		)
		if err == nil {
			return nil
		}
		lastStdout, lastStderr, lastErr = stdout, stderr, err
	}

	diag := strings.ToValidUTF8(lastStderr, "")
	if strings.TrimSpace(diag) == "" {
		diag = strings.ToValidUTF8(lastStdout, "")
	}
	return fmt.Errorf("%w: %s: %v", ErrConversionFailed, strings.TrimSpace(diag), lastErr)
}
