package ghostfield

import "fmt"

// Add registers one field described by def and returns the created Field.
// The wire id is derived immediately from the Form's secret and bucket.
//
// Returns ErrInvalidFieldName when def.Name fails ValidFieldName and
// ErrDuplicateField when the logical name is already registered.
func (f *Form) Add(def FieldDef) (Field, error) {
	return f.add(def, false)
}

// add is the single construction path for fields. Sigil fields come through
// here from EnableSigil with the sigil flag set.
func (f *Form) add(def FieldDef, sigil bool) (Field, error) {
	if !ValidFieldName(def.Name) {
		return Field{}, fmt.Errorf("%w: %q", ErrInvalidFieldName, def.Name)
	}
	if _, exists := f.byName[def.Name]; exists {
		return Field{}, fmt.Errorf("%w: %q", ErrDuplicateField, def.Name)
	}

	inputType := def.Type
	if inputType == "" {
		inputType = TypeText
	}

	fld := Field{
		name:        def.Name,
		wireID:      WireID(def.Name, f.secret, f.bucket),
		inputType:   inputType,
		placeholder: def.Placeholder,
		value:       def.Value,
		legit:       def.Legit,
		sigil:       sigil,
	}

	idx := len(f.fields)
	f.fields = append(f.fields, fld)
	f.byName[fld.name] = idx
	f.byWire[fld.wireID] = idx
	return fld, nil
}

// AddInput registers a legitimate field, one whose submitted value the
// application wants back from ExtractData.
func (f *Form) AddInput(name, inputType, placeholder string) (Field, error) {
	return f.Add(FieldDef{Legit: true, Name: name, Type: inputType, Placeholder: placeholder})
}

// AddHoneypot registers a trap field. Any non-empty submitted value under
// its wire id rejects the whole submission.
func (f *Form) AddHoneypot(name, inputType, placeholder string) (Field, error) {
	return f.Add(FieldDef{Name: name, Type: inputType, Placeholder: placeholder})
}

// AddFields registers every definition in order, stopping at the first
// error. Fields added before the failure stay registered.
func (f *Form) AddFields(defs ...FieldDef) error {
	for _, def := range defs {
		if _, err := f.Add(def); err != nil {
			return err
		}
	}
	return nil
}

// AddDefaultHoneypots registers the built-in trap catalog. Returns
// ErrDuplicateField if any catalog name is already taken, so call it before
// registering application fields that might collide, or pick from
// DefaultHoneypots manually.
func (f *Form) AddDefaultHoneypots() error {
	return f.AddFields(DefaultHoneypots()...)
}

// Lookup returns the field registered under the logical name.
func (f *Form) Lookup(name string) (Field, bool) {
	idx, ok := f.byName[name]
	if !ok {
		return Field{}, false
	}
	return f.fields[idx], true
}

// LookupWire returns the field whose current-bucket wire id is id. Ids
// derived during a previous hour are not found here; validation handles
// those itself.
func (f *Form) LookupWire(id string) (Field, bool) {
	idx, ok := f.byWire[id]
	if !ok {
		return Field{}, false
	}
	return f.fields[idx], true
}

// Fields returns all registered fields in registration order. The slice is
// a copy; the Form's own state cannot be mutated through it.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// DefaultHoneypots returns the built-in catalog of trap definitions: field
// names that look like the ordinary contact/profile inputs autofill bots
// hunt for. The slice is a fresh copy; callers may filter or extend it
// before registering.
//
// Two entries carry bait values. Their inputs render disabled, so a real
// browser never submits them while a scraper that replays the scraped
// markup does.
func DefaultHoneypots() []FieldDef {
	out := make([]FieldDef, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

var defaultCatalog = []FieldDef{
	{Name: "fullname", Type: TypeText, Placeholder: "Full name"},
	{Name: "firstname", Type: TypeText, Placeholder: "First name"},
	{Name: "lastname", Type: TypeText, Placeholder: "Last name"},
	{Name: "username", Type: TypeText, Placeholder: "Username"},
	{Name: "nickname", Type: TypeText, Placeholder: "Nickname"},
	{Name: "email", Type: TypeEmail, Placeholder: "Email address"},
	{Name: "email_confirm", Type: TypeEmail, Placeholder: "Confirm email"},
	{Name: "contact_email", Type: TypeEmail, Placeholder: "Contact email"},
	{Name: "phone", Type: TypeTel, Placeholder: "Phone number"},
	{Name: "mobile", Type: TypeTel, Placeholder: "Mobile number"},
	{Name: "fax", Type: TypeTel, Placeholder: "Fax number"},
	{Name: "address", Type: TypeText, Placeholder: "Street address"},
	{Name: "address2", Type: TypeText, Placeholder: "Address line 2"},
	{Name: "city", Type: TypeText, Placeholder: "City"},
	{Name: "state", Type: TypeText, Placeholder: "State"},
	{Name: "zipcode", Type: TypeText, Placeholder: "ZIP code"},
	{Name: "postal_code", Type: TypeText, Placeholder: "Postal code"},
	{Name: "country", Type: TypeText, Placeholder: "Country"},
	{Name: "company", Type: TypeText, Placeholder: "Company"},
	{Name: "organization", Type: TypeText, Placeholder: "Organization"},
	{Name: "department", Type: TypeText, Placeholder: "Department"},
	{Name: "job_title", Type: TypeText, Placeholder: "Job title"},
	{Name: "website", Type: TypeURL, Placeholder: "Website"},
	{Name: "homepage", Type: TypeURL, Placeholder: "Homepage", Value: "http://"},
	{Name: "twitter", Type: TypeText, Placeholder: "Twitter handle"},
	{Name: "linkedin", Type: TypeURL, Placeholder: "LinkedIn profile"},
	{Name: "age", Type: TypeNumber, Placeholder: "Age"},
	{Name: "birthday", Type: TypeText, Placeholder: "Birthday"},
	{Name: "gender", Type: TypeText, Placeholder: "Gender"},
	{Name: "subject_line", Type: TypeText, Placeholder: "Subject"},
	{Name: "comments", Type: TypeText, Placeholder: "Comments"},
	{Name: "referral", Type: TypeText, Placeholder: "How did you hear about us?"},
	{Name: "newsletter", Type: TypeText, Placeholder: "Subscribe to newsletter", Value: "yes"},
}
