package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vault2pdf <export.json> [flags]")
	fmt.Fprintln(w, "       vault2pdf <command>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Bitwarden JSON vault export to a printable PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  doctor     Check browser availability and environment")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'vault2pdf help convert' for conversion flags.")
}

// printConvertUsage prints usage for the default convert flow.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: vault2pdf <export.json> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Bitwarden JSON vault export to a printable PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  export.json    Unencrypted vault export file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>      PDF destination (default: input path with .pdf)")
	fmt.Fprintln(w, "  -c, --config <name>      Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>          Document title")
	fmt.Fprintln(w, "      --notes              Append a Markdown notes appendix")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "      --browser <path>     Headless browser executable (skips discovery)")
	fmt.Fprintln(w, "      --html-only          Write the HTML document and skip the PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --asset-path <dir>   Custom template/style directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet              Only show errors")
	fmt.Fprintln(w, "  -v, --verbose            Show detailed progress")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The browser can also be set with the VAULT2PDF_BROWSER environment variable.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: vault2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: vault2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check browser availability and environment.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: vault2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
