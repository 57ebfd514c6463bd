package vault2pdf

import (
	"encoding/json"
	"fmt"
)

// Export is the decoded form of a vault export document. Unknown fields
// in the input are ignored.
type Export struct {
	Folders []Folder `json:"folders"`
	Items   []Item   `json:"items"`
}

// Folder maps a folder id to its display name.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is one raw vault entry as exported. Most fields are optional in
// the export format; absent values decode to zero values.
type Item struct {
	Name             string  `json:"name"`
	Type             int     `json:"type"`
	FolderID         string  `json:"folderId"`
	Favorite         bool    `json:"favorite"`
	Notes            string  `json:"notes"`
	Login            *Login  `json:"login"`
	Fields           []Field `json:"fields"`
	RevisionDate     string  `json:"revisionDate"`
	LastRevisionDate string  `json:"lastRevisionDate"`
	CreationDate     string  `json:"creationDate"`
}

// Login holds the credential payload of a login-type item.
type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTP     string `json:"totp"`
	URIs     []URI  `json:"uris"`
}

// URI wraps a single login URI entry.
type URI struct {
	URI string `json:"uri"`
}

// Field is a user-defined custom field on an item.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ParseExport decodes a vault export document. Only document-level
// malformed JSON is fatal: a wrong-typed field inside a single folder
// or item leaves that field at its zero value and the record degrades
// to defaults during normalization.
func ParseExport(data []byte) (*Export, error) {
	var raw struct {
		Folders []json.RawMessage `json:"folders"`
		Items   []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportParse, err)
	}

	export := &Export{
		Folders: make([]Folder, 0, len(raw.Folders)),
		Items:   make([]Item, 0, len(raw.Items)),
	}
	for _, rawFolder := range raw.Folders {
		var folder Folder
		// Decode errors keep whatever fields did decode.
		_ = json.Unmarshal(rawFolder, &folder)
		export.Folders = append(export.Folders, folder)
	}
	for _, rawItem := range raw.Items {
		var item Item
		_ = json.Unmarshal(rawItem, &item)
		export.Items = append(export.Items, item)
	}
	return export, nil
}
