package vault2pdf

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// NotesRenderer renders account notes as Markdown for the optional
// notes appendix.
type NotesRenderer struct {
	md goldmark.Markdown
}

// NewNotesRenderer creates a NotesRenderer with GFM extensions and
// syntax highlighting. WithUnsafe is intentionally not used: raw HTML
// inside a note is dropped by Goldmark, so note content cannot inject
// markup into the document.
func NewNotesRenderer() *NotesRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
			htmlrenderer.WithXHTML(),
		),
	)
	return &NotesRenderer{md: md}
}

// AppendNotes renders a notes appendix and injects it before </body>.
// Accounts without notes are skipped; when no account carries notes the
// document is returned unchanged.
func (n *NotesRenderer) AppendNotes(htmlContent string, accounts []AccountRecord) (string, error) {
	var notes strings.Builder
	for _, acct := range accounts {
		if strings.TrimSpace(acct.Notes) == "" {
			continue
		}

		var body bytes.Buffer
		if err := n.md.Convert([]byte(acct.Notes), &body); err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrNotesRender, acct.Name, err)
		}

		notes.WriteString(`<section class="note"><h3 class="note-title">`)
		notes.WriteString(html.EscapeString(acct.Name))
		notes.WriteString(`</h3>`)
		notes.WriteString(body.String())
		notes.WriteString(`</section>`)
	}

	if notes.Len() == 0 {
		return htmlContent, nil
	}

	appendix := `<section class="notes-appendix"><h2>Notes</h2>` + notes.String() + `</section>`

	// Inject before </body>; append when the document has no body tag.
	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "</body>"); idx != -1 {
		return htmlContent[:idx] + appendix + htmlContent[idx:], nil
	}
	return htmlContent + appendix, nil
}
