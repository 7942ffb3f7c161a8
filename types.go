package ghostfield

// Input type constants for field construction. The type is passed through
// verbatim to the rendered type attribute, so any valid HTML input type
// works; these cover the ones the default catalog uses.
const (
	TypeText     = "text"
	TypeHidden   = "hidden"
	TypeEmail    = "email"
	TypeTel      = "tel"
	TypeURL      = "url"
	TypeNumber   = "number"
	TypePassword = "password"
	TypeSearch   = "search"
)
