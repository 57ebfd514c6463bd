package vault2pdf

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alnah/go-vault2pdf/internal/assets"
)

// Embedded asset names for the document shell.
const (
	templateName = "layout"
	styleName    = "vault"
)

// emptyRow is rendered when the export contains no items.
const emptyRow = `<tr><td colspan="2" class="empty">No entries found</td></tr>`

// placeholder binds a template token to its replacement value.
type placeholder struct {
	name  string
	value string
}

// Renderer builds the HTML overview document from account records. All
// export-controlled content is escaped before insertion; a record can
// never inject markup into the document.
type Renderer struct {
	loader assets.AssetLoader
}

// NewRenderer creates a Renderer backed by the given asset loader.
// A nil loader falls back to the embedded assets.
func NewRenderer(loader assets.AssetLoader) *Renderer {
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}
	return &Renderer{loader: loader}
}

// RenderDocument loads the layout template and substitutes the document
// placeholders: title, generated, count, rows, style_href. generated is
// the human-readable generation timestamp and styleHref the file URI of
// the materialized stylesheet.
func (r *Renderer) RenderDocument(accounts []AccountRecord, title, generated, styleHref string) (string, error) {
	tmpl, err := r.loader.LoadTemplate(templateName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}

	rows := buildRows(accounts)
	if rows == "" {
		rows = emptyRow
	}

	// Substituted in a single pass so a value containing a token-shaped
	// string is never re-substituted.
	return expandPlaceholders(tmpl, []placeholder{
		{"title", html.EscapeString(title)},
		{"generated", generated},
		{"count", strconv.Itoa(len(accounts))},
		{"rows", rows},
		{"style_href", styleHref},
	}), nil
}

// Style returns the stylesheet content referenced by the document.
func (r *Renderer) Style() (string, error) {
	css, err := r.loader.LoadStyle(styleName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStyleMissing, err)
	}
	return css, nil
}

// expandPlaceholders replaces {{name}} tokens in one left-to-right
// scan. Unknown tokens are kept literally.
func expandPlaceholders(tmpl string, values []placeholder) string {
	var buf strings.Builder
	buf.Grow(len(tmpl))

	for {
		start := strings.Index(tmpl, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(tmpl[start:], "}}")
		if end == -1 {
			break
		}
		end += start

		name := tmpl[start+2 : end]
		replaced := false
		for _, p := range values {
			if p.name == name {
				buf.WriteString(tmpl[:start])
				buf.WriteString(p.value)
				replaced = true
				break
			}
		}
		if !replaced {
			buf.WriteString(tmpl[:end+2])
		}
		tmpl = tmpl[end+2:]
	}

	buf.WriteString(tmpl)
	return buf.String()
}

// buildRows renders one table row per account: an identity cell and a
// credentials cell.
func buildRows(accounts []AccountRecord) string {
	parts := make([]string, 0, len(accounts))
	for _, acct := range accounts {
		var row strings.Builder
		row.WriteString("<tr>\n")
		row.WriteString(`  <td><div class="entry-name">`)
		row.WriteString(html.EscapeString(acct.Name))
		row.WriteString("</div>")
		row.WriteString(renderMeta(acct))
		row.WriteString("</td>\n")
		row.WriteString("  <td>")
		row.WriteString(renderCredentials(acct))
		row.WriteString("</td>\n")
		row.WriteString("</tr>")
		parts = append(parts, row.String())
	}
	return strings.Join(parts, "\n")
}

// renderMeta renders the tag badges under the entry name: folder
// (omitted when it is the no-folder sentinel), item type, and a
// Favorite badge. With no applicable tags, a literal "None" is shown.
func renderMeta(acct AccountRecord) string {
	var tags []string

	if acct.Folder != "" && !strings.EqualFold(acct.Folder, NoFolder) {
		tags = append(tags, `<span class="tag">`+html.EscapeString(acct.Folder)+`</span>`)
	}
	if label := acct.Type.String(); label != "" {
		tags = append(tags, `<span class="tag">`+html.EscapeString(label)+`</span>`)
	}
	if acct.Favorite {
		tags = append(tags, `<span class="tag tag--favorite">Favorite</span>`)
	}

	if len(tags) == 0 {
		return `<div class="entry-meta">None</div>`
	}
	return `<div class="entry-meta">` + strings.Join(tags, "") + `</div>`
}

// renderCredentials renders the username and password blocks plus the
// optional extras block.
func renderCredentials(acct AccountRecord) string {
	username := acct.Username
	if username == "" {
		username = "-"
	}
	password := acct.Password
	if password == "" {
		password = "-"
	}

	var extraHTML string
	if extras := renderExtras(acct); extras != "" {
		extraHTML = `<div class="credentials-extra">` + extras + `</div>`
	}

	return strings.Join([]string{
		`<div class="credentials">`,
		`  <div class="credential-block credential-block--user">`,
		`    <span class="credential-label">Username / Email</span>`,
		`    <span class="credential-value">` + html.EscapeString(username) + `</span>`,
		`  </div>`,
		`  <div class="credential-block credential-block--password">`,
		`    <span class="credential-label">Password</span>`,
		`    <span class="credential-value">` + html.EscapeString(password) + `</span>`,
		`  </div>`,
		`  ` + extraHTML,
		`</div>`,
	}, "\n")
}

// renderExtras lists the primary URI and the TOTP secret, when present.
// URIs beyond the first are intentionally not shown.
func renderExtras(acct AccountRecord) string {
	var bits []string
	if len(acct.URIs) > 0 {
		bits = append(bits, "<span>URL: "+html.EscapeString(acct.URIs[0])+"</span>")
	}
	if acct.TOTP != "" {
		bits = append(bits, "<span>2FA: "+html.EscapeString(acct.TOTP)+"</span>")
	}
	return strings.Join(bits, "\n")
}
