// Package vault2pdf converts a Bitwarden-style JSON vault export into a
// printable PDF overview using a locally installed headless browser.
//
// # Quick Start
//
// Create a service and convert an export document:
//
//	svc := vault2pdf.New()
//	err := svc.Convert(ctx, vault2pdf.Input{
//	    ExportJSON: data,
//	    OutputPath: "vault.pdf",
//	})
//
// The intermediate HTML document and its stylesheet are written next to
// the PDF and left in place for inspection.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Export normalization (folders resolved, timestamps reformatted,
//     records sorted by folder then name)
//  2. HTML rendering via placeholder substitution with strict escaping
//     of all export-controlled content
//  3. Engine discovery (env override, well-known install locations,
//     executable search path)
//  4. PDF printing via the discovered engine, trying the current
//     --headless=new flag spelling before the legacy --headless one
//
// # Browser Requirements
//
// PDF generation requires a Chromium-based browser (Edge, Chrome,
// Chromium, or Brave). Set VAULT2PDF_BROWSER to force a specific
// binary; discovery is skipped when the variable names an existing
// path.
package vault2pdf
