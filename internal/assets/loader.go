package assets

// SourceLoader defines the contract for loading the three web UI sources.
type SourceLoader interface {
	// LoadSource reads the source file for role.
	// Returns ErrSourceNotFound if the file doesn't exist.
	// Returns ErrInvalidEncoding if the content is not UTF-8.
	// Returns ErrInvalidRole if role is unknown.
	LoadSource(role Role) (Source, error)
}

// TemplateLoader defines the contract for loading text templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}

// LoadAll reads the markup, stylesheet and script in that order.
// The first failure aborts the load; nothing is returned for the others.
func LoadAll(loader SourceLoader) (html, css, js Source, err error) {
	if html, err = loader.LoadSource(RoleHTML); err != nil {
		return Source{}, Source{}, Source{}, err
	}
	if css, err = loader.LoadSource(RoleCSS); err != nil {
		return Source{}, Source{}, Source{}, err
	}
	if js, err = loader.LoadSource(RoleJS); err != nil {
		return Source{}, Source{}, Source{}, err
	}
	return html, css, js, nil
}
