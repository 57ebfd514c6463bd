package vault2pdf

import (
	"reflect"
	"testing"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"zulu suffix", "2023-05-01T12:00:00Z", "05/01/2023 12:00 PM"},
		{"zulu with fraction", "2024-01-15T09:30:45.123Z", "01/15/2024 09:30 AM"},
		{"explicit offset", "2023-05-01T18:45:00+02:00", "05/01/2023 06:45 PM"},
		{"no offset", "2023-12-31T23:59:59", "12/31/2023 11:59 PM"},
		{"date only", "2023-05-01", "05/01/2023 12:00 AM"},
		{"minutes only", "2023-05-01T07:05", "05/01/2023 07:05 AM"},
		{"unparsable kept verbatim", "not-a-date", "not-a-date"},
		{"garbage kept verbatim", "2023/05/01 noon", "2023/05/01 noon"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeTimestamp(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeTimestamp(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestItemTypeString(t *testing.T) {
	tests := []struct {
		itemType ItemType
		want     string
	}{
		{ItemTypeLogin, "Login"},
		{ItemTypeSecureNote, "Secure Note"},
		{ItemTypeCard, "Card"},
		{ItemTypeIdentity, "Identity"},
		{ItemTypeUnknown, "Unknown"},
		{ItemType(99), ""},
	}

	for _, tt := range tests {
		if got := tt.itemType.String(); got != tt.want {
			t.Errorf("ItemType(%d).String() = %q, want %q", tt.itemType, got, tt.want)
		}
	}
}

func TestItemTypeFromCode(t *testing.T) {
	tests := []struct {
		code int
		want ItemType
	}{
		{1, ItemTypeLogin},
		{2, ItemTypeSecureNote},
		{3, ItemTypeCard},
		{4, ItemTypeIdentity},
		{0, ItemTypeUnknown},
		{5, ItemTypeUnknown},
		{-1, ItemTypeUnknown},
	}

	for _, tt := range tests {
		if got := itemTypeFromCode(tt.code); got != tt.want {
			t.Errorf("itemTypeFromCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestCollectAccountsSorting(t *testing.T) {
	export := &Export{
		Folders: []Folder{
			{ID: "f1", Name: "Work"},
			{ID: "f2", Name: "banking"},
		},
		Items: []Item{
			{Name: "Zeta", Type: 1, FolderID: "f1"},
			{Name: "alpha", Type: 1, FolderID: "f1"},
			{Name: "Credit Union", Type: 1, FolderID: "f2"},
			{Name: "Orphan", Type: 1},
		},
	}

	accounts := CollectAccounts(export)

	var got []string
	for _, a := range accounts {
		got = append(got, a.Folder+"/"+a.Name)
	}
	// Case-insensitive by folder then name; "No folder" sorts between
	// "banking" and "Work".
	want := []string{
		"banking/Credit Union",
		"No folder/Orphan",
		"Work/alpha",
		"Work/Zeta",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sort order = %v, want %v", got, want)
	}
}

func TestCollectAccountsStableOnTies(t *testing.T) {
	export := &Export{
		Items: []Item{
			{Name: "Same", Type: 1, Notes: "first"},
			{Name: "same", Type: 1, Notes: "second"},
			{Name: "SAME", Type: 1, Notes: "third"},
		},
	}

	accounts := CollectAccounts(export)

	want := []string{"first", "second", "third"}
	for i, a := range accounts {
		if a.Notes != want[i] {
			t.Fatalf("tie order broken at %d: got %q, want %q", i, a.Notes, want[i])
		}
	}
}

func TestCollectAccountsDeterministic(t *testing.T) {
	export := &Export{
		Folders: []Folder{{ID: "f1", Name: "Shared"}},
		Items: []Item{
			{Name: "b", Type: 1, FolderID: "f1"},
			{Name: "a", Type: 2},
			{Name: "c", Type: 3, FolderID: "f1"},
		},
	}

	first := CollectAccounts(export)
	second := CollectAccounts(export)
	if !reflect.DeepEqual(first, second) {
		t.Error("CollectAccounts is not deterministic for the same export")
	}
}

func TestCollectAccountsNil(t *testing.T) {
	if got := CollectAccounts(nil); got != nil {
		t.Errorf("CollectAccounts(nil) = %v, want nil", got)
	}
}

func TestNewAccountRecordDefaults(t *testing.T) {
	folders := map[string]string{"f1": "Personal"}

	t.Run("empty name becomes untitled", func(t *testing.T) {
		rec := newAccountRecord(Item{Type: 1}, folders)
		if rec.Name != "(untitled)" {
			t.Errorf("Name = %q, want %q", rec.Name, "(untitled)")
		}
	})

	t.Run("unresolvable folder id", func(t *testing.T) {
		rec := newAccountRecord(Item{Name: "x", FolderID: "missing"}, folders)
		if rec.Folder != NoFolder {
			t.Errorf("Folder = %q, want %q", rec.Folder, NoFolder)
		}
	})

	t.Run("resolved folder", func(t *testing.T) {
		rec := newAccountRecord(Item{Name: "x", FolderID: "f1"}, folders)
		if rec.Folder != "Personal" {
			t.Errorf("Folder = %q, want %q", rec.Folder, "Personal")
		}
	})

	t.Run("nil login yields empty credentials", func(t *testing.T) {
		rec := newAccountRecord(Item{Name: "note", Type: 2}, folders)
		if rec.Username != "" || rec.Password != "" || rec.TOTP != "" || len(rec.URIs) != 0 {
			t.Errorf("expected empty credentials, got %+v", rec)
		}
	})
}

func TestNewAccountRecordFields(t *testing.T) {
	rec := newAccountRecord(Item{
		Name: "x",
		Fields: []Field{
			{Name: "PIN", Value: "1234"},
			{Name: "", Value: "anon"},
			{Name: "Empty", Value: ""},
		},
	}, nil)

	want := []string{"PIN: 1234", "Field: anon"}
	if !reflect.DeepEqual(rec.Fields, want) {
		t.Errorf("Fields = %v, want %v", rec.Fields, want)
	}
}

func TestNewAccountRecordURIs(t *testing.T) {
	rec := newAccountRecord(Item{
		Name: "x",
		Login: &Login{
			URIs: []URI{{URI: "https://a.example"}, {URI: ""}, {URI: "https://b.example"}},
		},
	}, nil)

	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(rec.URIs, want) {
		t.Errorf("URIs = %v, want %v", rec.URIs, want)
	}
}

func TestNewAccountRecordRevisionFallback(t *testing.T) {
	t.Run("revisionDate preferred", func(t *testing.T) {
		rec := newAccountRecord(Item{
			Name:             "x",
			RevisionDate:     "2023-05-01T12:00:00Z",
			LastRevisionDate: "2020-01-01T00:00:00Z",
		}, nil)
		if rec.LastModified != "05/01/2023 12:00 PM" {
			t.Errorf("LastModified = %q", rec.LastModified)
		}
	})

	t.Run("lastRevisionDate fallback", func(t *testing.T) {
		rec := newAccountRecord(Item{
			Name:             "x",
			LastRevisionDate: "2020-01-01T08:00:00Z",
		}, nil)
		if rec.LastModified != "01/01/2020 08:00 AM" {
			t.Errorf("LastModified = %q", rec.LastModified)
		}
	})
}
