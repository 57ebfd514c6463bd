package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidBasePath  = errors.New("invalid asset path")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("path escapes asset directory")
)
