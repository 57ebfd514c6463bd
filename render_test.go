package vault2pdf

import (
	"strings"
	"testing"
)

func TestRenderDocumentEscapesContent(t *testing.T) {
	r := NewRenderer(nil)
	accounts := []AccountRecord{
		{
			Name:     `<script>alert("x")</script>`,
			Type:     ItemTypeLogin,
			Folder:   "A&B",
			Username: `user<b>`,
			Password: `pa"ss&word`,
			URIs:     []string{"https://example.com/?a=1&b=2"},
			TOTP:     "<totp>",
		},
	}

	doc, err := r.RenderDocument(accounts, "My <Vault>", "05/01/2023 12:00 PM", "file:///tmp/vault.css")
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	forbidden := []string{`<script>`, `user<b>`, `<totp>`}
	for _, s := range forbidden {
		if strings.Contains(doc, s) {
			t.Errorf("document contains unescaped content %q", s)
		}
	}

	escaped := []string{
		"&lt;script&gt;",
		"A&amp;B",
		"user&lt;b&gt;",
		"pa&#34;ss&amp;word",
		"https://example.com/?a=1&amp;b=2",
		"2FA: &lt;totp&gt;",
		"My &lt;Vault&gt;",
	}
	for _, s := range escaped {
		if !strings.Contains(doc, s) {
			t.Errorf("document missing escaped content %q", s)
		}
	}
}

func TestRenderDocumentEmptyExport(t *testing.T) {
	r := NewRenderer(nil)

	doc, err := r.RenderDocument(nil, "Title", "now", "vault.css")
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	if !strings.Contains(doc, "No entries found") {
		t.Error("empty export should render the placeholder row")
	}
	if !strings.Contains(doc, ">0<") && !strings.Contains(doc, "0 entries") && !strings.Contains(doc, "Entries: 0") {
		// Layout-dependent; at minimum the count token must be gone.
		if strings.Contains(doc, "{{count}}") {
			t.Error("count placeholder was not substituted")
		}
	}
}

func TestRenderDocumentSubstitutesAllPlaceholders(t *testing.T) {
	r := NewRenderer(nil)

	doc, err := r.RenderDocument([]AccountRecord{{Name: "x", Type: ItemTypeLogin}},
		"Title", "05/01/2023 12:00 PM", "file:///out/vault.css")
	if err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}

	for _, token := range []string{"{{title}}", "{{generated}}", "{{count}}", "{{rows}}", "{{style_href}}"} {
		if strings.Contains(doc, token) {
			t.Errorf("unsubstituted placeholder %q", token)
		}
	}
	if !strings.Contains(doc, "file:///out/vault.css") {
		t.Error("stylesheet href missing from document")
	}
	if !strings.Contains(doc, "05/01/2023 12:00 PM") {
		t.Error("generation timestamp missing from document")
	}
}

func TestExpandPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values []placeholder
		want   string
	}{
		{
			name:   "basic substitution",
			tmpl:   "a {{x}} b",
			values: []placeholder{{"x", "1"}},
			want:   "a 1 b",
		},
		{
			name:   "unknown token kept literal",
			tmpl:   "a {{y}} b",
			values: []placeholder{{"x", "1"}},
			want:   "a {{y}} b",
		},
		{
			name:   "value containing a token is not re-substituted",
			tmpl:   "{{rows}} and {{title}}",
			values: []placeholder{{"rows", "{{title}}"}, {"title", "T"}},
			want:   "{{title}} and T",
		},
		{
			name:   "unterminated token",
			tmpl:   "a {{x",
			values: []placeholder{{"x", "1"}},
			want:   "a {{x",
		},
		{
			name: "repeated token",
			tmpl: "{{x}}{{x}}",
			values: []placeholder{
				{"x", "1"},
			},
			want: "11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expandPlaceholders(tt.tmpl, tt.values)
			if got != tt.want {
				t.Errorf("expandPlaceholders(%q) = %q, want %q", tt.tmpl, got, tt.want)
			}
		})
	}
}

func TestRenderMeta(t *testing.T) {
	tests := []struct {
		name string
		acct AccountRecord
		want []string
		not  []string
	}{
		{
			name: "folder, type, and favorite",
			acct: AccountRecord{Folder: "Work", Type: ItemTypeLogin, Favorite: true},
			want: []string{">Work<", ">Login<", "Favorite"},
		},
		{
			name: "no-folder sentinel omitted",
			acct: AccountRecord{Folder: NoFolder, Type: ItemTypeLogin},
			want: []string{">Login<"},
			not:  []string{"No folder"},
		},
		{
			name: "nothing applicable",
			acct: AccountRecord{Folder: NoFolder, Type: ItemType(99)},
			want: []string{`<div class="entry-meta">None</div>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderMeta(tt.acct)
			for _, s := range tt.want {
				if !strings.Contains(got, s) {
					t.Errorf("renderMeta() = %q, missing %q", got, s)
				}
			}
			for _, s := range tt.not {
				if strings.Contains(got, s) {
					t.Errorf("renderMeta() = %q, should not contain %q", got, s)
				}
			}
		})
	}
}

func TestRenderCredentialsDefaults(t *testing.T) {
	got := renderCredentials(AccountRecord{})

	// Both blocks fall back to a dash when the login is empty.
	if strings.Count(got, `<span class="credential-value">-</span>`) != 2 {
		t.Errorf("expected two dash placeholders, got:\n%s", got)
	}
	if strings.Contains(got, "credentials-extra") {
		t.Error("no extras block expected for an empty record")
	}
}

func TestRenderExtrasFirstURIOnly(t *testing.T) {
	got := renderExtras(AccountRecord{
		URIs: []string{"https://first.example", "https://second.example"},
		TOTP: "JBSWY3DP",
	})

	if !strings.Contains(got, "URL: https://first.example") {
		t.Errorf("missing first URI: %q", got)
	}
	if strings.Contains(got, "second.example") {
		t.Errorf("secondary URIs must not be rendered: %q", got)
	}
	if !strings.Contains(got, "2FA: JBSWY3DP") {
		t.Errorf("missing TOTP: %q", got)
	}
}

func TestStyleLoads(t *testing.T) {
	r := NewRenderer(nil)

	css, err := r.Style()
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if !strings.Contains(css, "entry-name") {
		t.Error("stylesheet does not cover the entry-name class")
	}
}
