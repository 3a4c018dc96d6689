package webcontent

import (
	"errors"

	"github.com/alnah/go-webcontent/internal/assets"
	"github.com/alnah/go-webcontent/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Source loading errors.
	ErrSourceNotFound  = assets.ErrSourceNotFound
	ErrSourceRead      = assets.ErrSourceRead
	ErrInvalidEncoding = assets.ErrInvalidEncoding

	// Assembly errors.
	ErrTagNotFound  = errors.New("reference tag not found in markup")
	ErrHeaderRender = pipeline.ErrHeaderRender

	// Output errors.
	ErrWriteHeader = errors.New("failed to write header")

	// Construction errors.
	ErrInvalidRoot = errors.New("invalid project root")
)
