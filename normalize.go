package vault2pdf

import (
	"sort"
	"strings"
	"time"
)

// ItemType classifies a vault item.
type ItemType int

// Item type codes as used by the export format.
const (
	ItemTypeUnknown ItemType = iota
	ItemTypeLogin
	ItemTypeSecureNote
	ItemTypeCard
	ItemTypeIdentity
)

// itemTypeFromCode maps the export's numeric type code to an ItemType.
// Unrecognized codes map to ItemTypeUnknown.
func itemTypeFromCode(code int) ItemType {
	switch code {
	case 1:
		return ItemTypeLogin
	case 2:
		return ItemTypeSecureNote
	case 3:
		return ItemTypeCard
	case 4:
		return ItemTypeIdentity
	default:
		return ItemTypeUnknown
	}
}

// String returns the display label for the item type. Values outside
// the defined constants have no label.
func (t ItemType) String() string {
	switch t {
	case ItemTypeLogin:
		return "Login"
	case ItemTypeSecureNote:
		return "Secure Note"
	case ItemTypeCard:
		return "Card"
	case ItemTypeIdentity:
		return "Identity"
	case ItemTypeUnknown:
		return "Unknown"
	default:
		return ""
	}
}

const (
	// NoFolder labels items without a resolvable folder.
	NoFolder = "No folder"
	// untitledName substitutes for an empty item name.
	untitledName = "(untitled)"
	// timestampLayout is the display format for vault timestamps.
	timestampLayout = "01/02/2006 03:04 PM"
)

// AccountRecord is the canonical, render-ready form of one vault item.
// Records are immutable once built and discarded after rendering.
type AccountRecord struct {
	Name         string
	Type         ItemType
	Folder       string
	Favorite     bool
	Username     string
	Password     string
	TOTP         string
	URIs         []string
	Notes        string
	Created      string
	LastModified string
	Fields       []string
}

// CollectAccounts normalizes every export item into an AccountRecord
// and returns them sorted by folder then name, case-insensitively. A
// malformed item degrades to default values; it never aborts the run.
func CollectAccounts(export *Export) []AccountRecord {
	if export == nil {
		return nil
	}

	folders := make(map[string]string, len(export.Folders))
	for _, f := range export.Folders {
		folders[f.ID] = f.Name
	}

	accounts := make([]AccountRecord, 0, len(export.Items))
	for _, item := range export.Items {
		accounts = append(accounts, newAccountRecord(item, folders))
	}

	// Stable sort keeps the original export order among full ties.
	sort.SliceStable(accounts, func(i, j int) bool {
		fi := strings.ToLower(accounts[i].Folder)
		fj := strings.ToLower(accounts[j].Folder)
		if fi != fj {
			return fi < fj
		}
		return strings.ToLower(accounts[i].Name) < strings.ToLower(accounts[j].Name)
	})

	return accounts
}

// newAccountRecord builds one canonical record from a raw export item.
func newAccountRecord(item Item, folders map[string]string) AccountRecord {
	login := item.Login
	if login == nil {
		login = &Login{}
	}

	var uris []string
	for _, u := range login.URIs {
		if u.URI != "" {
			uris = append(uris, u.URI)
		}
	}

	var fields []string
	for _, f := range item.Fields {
		if f.Value == "" {
			continue
		}
		name := f.Name
		if name == "" {
			name = "Field"
		}
		fields = append(fields, name+": "+f.Value)
	}

	name := item.Name
	if name == "" {
		name = untitledName
	}

	folder := folders[item.FolderID]
	if folder == "" {
		folder = NoFolder
	}

	revision := item.RevisionDate
	if revision == "" {
		revision = item.LastRevisionDate
	}

	return AccountRecord{
		Name:         name,
		Type:         itemTypeFromCode(item.Type),
		Folder:       folder,
		Favorite:     item.Favorite,
		Username:     login.Username,
		Password:     login.Password,
		TOTP:         login.TOTP,
		URIs:         uris,
		Notes:        item.Notes,
		Created:      NormalizeTimestamp(item.CreationDate),
		LastModified: NormalizeTimestamp(revision),
		Fields:       fields,
	}
}

// timestampLayouts are tried in order when parsing export timestamps.
// The export format is ISO-8601-like with a Z suffix; the suffix is
// mapped to an explicit UTC offset before parsing.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeTimestamp converts an export timestamp to MM/DD/YYYY hh:mm
// AM/PM form. An empty value yields the empty string. A non-empty value
// that cannot be parsed is returned verbatim rather than treated as an
// error, so no timestamp is ever lost.
func NormalizeTimestamp(value string) string {
	if value == "" {
		return ""
	}

	clean := strings.ReplaceAll(value, "Z", "+00:00")
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.Format(timestampLayout)
		}
	}

	return value
}
