package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all flags for the default convert flow.
type convertFlags struct {
	output    string
	title     string
	config    string
	browser   string
	assetPath string
	notes     bool
	htmlOnly  bool
	quiet     bool
	verbose   bool
}

// parseConvertFlags parses convert flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("vault2pdf", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "PDF destination (default: input path with .pdf)")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.browser, "browser", "", "headless browser executable")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template/style directory")
	fs.BoolVar(&f.notes, "notes", false, "append a Markdown notes appendix")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the HTML document and skip the PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
