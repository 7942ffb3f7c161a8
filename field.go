package ghostfield

import "regexp"

// fieldNameRx is the pattern every logical field name must match. Names
// double as map keys and as hash input, so the charset stays narrow.
var fieldNameRx = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidFieldName reports whether name can be used as a logical field name.
// Valid names are non-empty and contain only ASCII letters, digits,
// underscores, and hyphens.
func ValidFieldName(name string) bool {
	return fieldNameRx.MatchString(name)
}

// FieldDef describes one field to register on a Form. The zero value of
// Legit declares a honeypot, which keeps literal definitions of trap sets
// short:
//
//	form.AddFields(
//	    ghostfield.FieldDef{Legit: true, Name: "email", Type: ghostfield.TypeEmail},
//	    ghostfield.FieldDef{Name: "fax", Type: ghostfield.TypeTel},
//	)
type FieldDef struct {
	// Legit marks a field the application actually reads. Unset means the
	// field is a honeypot and any submitted value rejects the form.
	Legit bool

	// Name is the logical field name. Must satisfy ValidFieldName.
	Name string

	// Type is the HTML input type. Defaults to "text" when empty.
	Type string

	// Placeholder is rendered as the placeholder attribute when non-empty.
	Placeholder string

	// Value pre-fills the input. On honeypots it acts as bait: the rendered
	// input carries the value but is disabled, so a real browser never
	// submits it while a scraper replaying the markup does.
	Value string
}

// Field is one registered form input. Fields are immutable once created;
// all state is set by the owning Form and exposed through accessors.
type Field struct {
	name        string
	wireID      string
	inputType   string
	placeholder string
	value       string
	legit       bool
	sigil       bool
}

// Name returns the logical field name the application knows the field by.
func (f Field) Name() string { return f.name }

// WireID returns the derived name the field travels under in HTML and in
// submitted form data.
func (f Field) WireID() string { return f.wireID }

// Type returns the HTML input type.
func (f Field) Type() string { return f.inputType }

// Placeholder returns the placeholder text, or "" when none was set.
func (f Field) Placeholder() string { return f.placeholder }

// Value returns the pre-filled value, or "" when none was set.
func (f Field) Value() string { return f.value }

// Legit reports whether the field carries real application data. Non-legit
// fields are honeypots or sigil fields.
func (f Field) Legit() bool { return f.legit }

// Sigil reports whether the field belongs to the JS handshake. Sigil fields
// are never legit and are excluded from the honeypot trip rule.
func (f Field) Sigil() bool { return f.sigil }
