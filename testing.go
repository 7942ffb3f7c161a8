package ghostfield

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// SubmissionBuilder assembles wire-keyed form data for tests. It plays the
// part of the browser or bot: values are stored under the wire ids a real
// client would see in the rendered markup.
//
//	values := ghostfield.NewSubmission(form).
//	    Set("email", "me@example.com").
//	    WithProof("Mozilla/5.0").
//	    Values()
//	if !form.Validate(values, "Mozilla/5.0") {
//	    t.Fatal("expected pass")
//	}
type SubmissionBuilder struct {
	form   *Form
	bucket string
	values map[string]string
}

// NewSubmission starts a builder addressing the Form's current bucket.
func NewSubmission(f *Form) *SubmissionBuilder {
	return &SubmissionBuilder{
		form:   f,
		bucket: f.bucket,
		values: make(map[string]string),
	}
}

// AtPreviousHour switches the builder to the previous hour's bucket.
// Subsequent Set and FillHoneypot calls derive wire ids there, simulating a
// form rendered before an hour boundary and submitted after it.
func (b *SubmissionBuilder) AtPreviousHour() *SubmissionBuilder {
	b.bucket = BucketAt(b.form.now.Add(-time.Hour))
	return b
}

// Set stores value under the wire id derived for the logical name at the
// builder's bucket. The name does not have to be registered; deriving for
// unknown names is how stale-field scenarios are built.
func (b *SubmissionBuilder) Set(name, value string) *SubmissionBuilder {
	b.values[WireID(name, b.form.secret, b.bucket)] = value
	return b
}

// SetWire stores value under a raw wire id, bypassing derivation.
func (b *SubmissionBuilder) SetWire(id, value string) *SubmissionBuilder {
	b.values[id] = value
	return b
}

// FillHoneypot is Set with intent: it fills a trap the way an autofill bot
// would.
func (b *SubmissionBuilder) FillHoneypot(name, value string) *SubmissionBuilder {
	return b.Set(name, value)
}

// WithProof fills both sigil fields the way a JS-capable client would: the
// rendered time token as-is, plus the proof computed for userAgent. No-op
// when the handshake is not enabled on the Form.
func (b *SubmissionBuilder) WithProof(userAgent string) *SubmissionBuilder {
	timeField, ok := b.form.Lookup(b.form.sigilTimeName())
	if !ok {
		return b
	}
	stamp := timeField.Value()
	b.Set(timeField.Name(), stamp)
	b.Set(b.form.sigilName, SigilProof(userAgent, stamp))
	return b
}

// WithPlaceholder submits the sigil fields untouched, the way a client
// without JS (or a bot that never ran the script) would.
func (b *SubmissionBuilder) WithPlaceholder() *SubmissionBuilder {
	timeField, ok := b.form.Lookup(b.form.sigilTimeName())
	if !ok {
		return b
	}
	proofField, _ := b.form.Lookup(b.form.sigilName)
	b.Set(timeField.Name(), timeField.Value())
	b.Set(proofField.Name(), proofField.Value())
	return b
}

// Values returns the assembled wire mapping. The map is live; further
// builder calls keep writing into it.
func (b *SubmissionBuilder) Values() map[string]string {
	return b.values
}

// Request builds an HTTP POST to target carrying the assembled values as
// urlencoded form data with userAgent set, ready for handler tests.
func (b *SubmissionBuilder) Request(target, userAgent string) *http.Request {
	form := url.Values{}
	for k, v := range b.values {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)
	return req
}

// RenderHTML renders any templ component to a string. Test convenience for
// asserting on the markup the Form's components produce.
func RenderHTML(component templ.Component) (string, error) {
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
