package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrSourceNotFound indicates a required source file does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrSourceRead indicates an I/O error occurred while reading a source file.
	ErrSourceRead = errors.New("failed to read source file")

	// ErrInvalidEncoding indicates the source bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("source is not valid UTF-8")

	// ErrInvalidRole indicates the requested role is not html, css or js.
	ErrInvalidRole = errors.New("invalid source role")

	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the template name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")
)
