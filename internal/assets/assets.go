package assets

// Bundled asset names.
const (
	// DefaultStyle is the name of the built-in CSS stylesheet.
	DefaultStyle = "pdf"

	// DefaultTemplate is the name of the built-in HTML document template.
	DefaultTemplate = "base"
)

// Loader defines the contract for loading CSS styles and HTML templates.
type Loader interface {
	// LoadStyle loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// defaultLoader serves the package-level convenience functions.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a bundled CSS stylesheet by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a bundled HTML template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}
