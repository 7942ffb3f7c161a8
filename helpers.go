package ghostfield

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context. Handy for pages assembled from the Form's components:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ghostfield.Render(w, r, page(form))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// Flatten reduces parsed form values to the flat wire mapping validation
// consumes. Multi-valued keys keep their first value; the rendered forms
// never produce repeated fields.
func Flatten(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// ValidateRequest parses r's form data and validates it against the Form,
// reading the User-Agent from the request. It is the one-line server side
// of a protected form:
//
//	if !form.ValidateRequest(r) {
//	    http.Error(w, "rejected", http.StatusBadRequest)
//	    return
//	}
func (f *Form) ValidateRequest(r *http.Request) bool {
	return f.InspectRequest(r).OK
}

// InspectRequest is ValidateRequest with the full Verdict. An unparseable
// body validates like an empty submission.
func (f *Form) InspectRequest(r *http.Request) Verdict {
	if r.Form == nil {
		_ = r.ParseForm()
	}
	return f.Inspect(Flatten(r.Form), r.UserAgent())
}

// ExtractRequest parses r's form data and returns the legitimate values
// keyed by logical name. Call it after validation passed; it applies no
// checks of its own.
func (f *Form) ExtractRequest(r *http.Request) map[string]string {
	if r.Form == nil {
		_ = r.ParseForm()
	}
	return f.ExtractData(Flatten(r.Form))
}
