package assets

import "fmt"

// Role identifies which of the three web UI sources a file provides.
type Role string

// Supported roles.
const (
	RoleHTML Role = "html"
	RoleCSS  Role = "css"
	RoleJS   Role = "js"
)

// Fixed source locations, relative to the project root.
const (
	DataDir  = "data"
	HTMLFile = "index.html"
	CSSFile  = "style.css"
	JSFile   = "app.js"
)

// Roles lists every role in pipeline order.
var Roles = []Role{RoleHTML, RoleCSS, RoleJS}

// Source is one web UI source file as read from disk.
type Source struct {
	Role    Role
	Path    string // relative to the project root, slash-separated
	Content string
}

// RelPath returns the fixed slash-separated path for role.
func RelPath(role Role) (string, error) {
	switch role {
	case RoleHTML:
		return DataDir + "/" + HTMLFile, nil
	case RoleCSS:
		return DataDir + "/" + CSSFile, nil
	case RoleJS:
		return DataDir + "/" + JSFile, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
}
