// Package ghostfieldecho provides Echo framework integration for GhostField
// protected forms.
//
// Declare the form once and let the middleware build and check it per
// request:
//
//	p := ghostfieldecho.New(secret, func(f *ghostfield.Form) error {
//	    f.AddInput("email", ghostfield.TypeEmail, "Your email")
//	    f.AddInput("message", ghostfield.TypeText, "Message")
//	    if err := f.AddDefaultHoneypots(); err != nil {
//	        return err
//	    }
//	    return f.EnableSigil()
//	})
//
//	g := e.Group("/contact", p.Middleware())
//	g.GET("", showForm)   // render with ghostfieldecho.FormFrom(c)
//	g.POST("", submit)    // only reached when validation passed
package ghostfieldecho

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	ghostfield "github.com/Coercive/GhostField"
)

// DefaultContextKey is where the middleware stores the request's Form.
const DefaultContextKey = "ghostfield.form"

// Builder declares the protected fields on a fresh Form. It runs once per
// request; returning an error aborts the request with a 500.
type Builder func(*ghostfield.Form) error

// Option configures a Protector.
type Option func(*options)

type options struct {
	contextKey string
	formOpts   []ghostfield.Option
	onReject   func(echo.Context, ghostfield.Verdict) error
}

// WithContextKey changes the context key the Form is stored under.
// Defaults to DefaultContextKey.
func WithContextKey(key string) Option {
	return func(o *options) {
		o.contextKey = key
	}
}

// WithFormOptions passes construction options to every per-request Form,
// typically ghostfield.WithLogger. Do not pass ghostfield.WithNow here; it
// would pin every request to the same instant.
func WithFormOptions(opts ...ghostfield.Option) Option {
	return func(o *options) {
		o.formOpts = opts
	}
}

// WithOnReject sets the handler invoked for rejected submissions. The
// default responds 400 with no detail.
func WithOnReject(fn func(echo.Context, ghostfield.Verdict) error) Option {
	return func(o *options) {
		o.onReject = fn
	}
}

// Protector builds per-request Forms from one declaration and filters
// submissions before they reach handlers.
type Protector struct {
	secret string
	build  Builder
	opts   options
}

// New creates a Protector. The secret is the key every Form derives its
// wire ids from; build declares the field set.
func New(secret string, build Builder, opts ...Option) *Protector {
	o := options{contextKey: DefaultContextKey}
	for _, opt := range opts {
		opt(&o)
	}
	if o.onReject == nil {
		o.onReject = func(c echo.Context, v ghostfield.Verdict) error {
			return c.String(http.StatusBadRequest, "Bad request")
		}
	}
	return &Protector{secret: secret, build: build, opts: o}
}

// Middleware attaches a fresh Form to every request and rejects mutating
// requests that fail validation. Read-only methods pass through so the GET
// that renders the form reaches its handler.
func (p *Protector) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			form := ghostfield.NewForm(p.secret, p.opts.formOpts...)
			if err := p.build(form); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
			c.Set(p.opts.contextKey, form)

			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			if v := form.InspectRequest(c.Request()); !v.OK {
				return p.opts.onReject(c, v)
			}
			return next(c)
		}
	}
}

// Form returns the request's Form stored by this Protector's middleware.
func (p *Protector) Form(c echo.Context) *ghostfield.Form {
	form, _ := c.Get(p.opts.contextKey).(*ghostfield.Form)
	return form
}

// FormFrom returns the request's Form under DefaultContextKey. Returns nil
// when the middleware did not run.
func FormFrom(c echo.Context) *ghostfield.Form {
	form, _ := c.Get(DefaultContextKey).(*ghostfield.Form)
	return form
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return ghostfieldecho.Render(c, contactPage(form))
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
