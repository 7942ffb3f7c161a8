package ghostfieldecho

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	ghostfield "github.com/Coercive/GhostField"
)

const testSecret = "adapter-test-secret"
const testUA = "Mozilla/5.0 (X11; Linux x86_64)"

func contactBuilder(f *ghostfield.Form) error {
	f.AddInput("email", ghostfield.TypeEmail, "Your email")
	f.AddInput("message", ghostfield.TypeText, "Message")
	f.AddHoneypot("fax", ghostfield.TypeTel, "Fax")
	return nil
}

// parallelForm builds a Form equivalent to what the middleware builds, for
// deriving submission wire ids. Same secret, same hour: same ids. If the
// test straddles an hour boundary the derived ids land in the middleware
// form's previous bucket, which validation still accepts.
func parallelForm(t *testing.T) *ghostfield.Form {
	t.Helper()
	form := ghostfield.NewForm(testSecret)
	if err := contactBuilder(form); err != nil {
		t.Fatalf("builder failed: %v", err)
	}
	return form
}

func newApp(t *testing.T, opts ...Option) (*echo.Echo, *Protector) {
	t.Helper()
	e := echo.New()
	p := New(testSecret, contactBuilder, opts...)

	g := e.Group("/contact", p.Middleware())
	g.GET("", func(c echo.Context) error {
		form := FormFrom(c)
		if form == nil {
			return c.String(http.StatusInternalServerError, "no form")
		}
		return Render(c, form.Honeypots())
	})
	g.POST("", func(c echo.Context) error {
		form := FormFrom(c)
		data := form.ExtractRequest(c.Request())
		return c.String(http.StatusOK, "email="+data["email"])
	})
	return e, p
}

func TestMiddlewareAllowsGET(t *testing.T) {
	e, _ := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ghostfield.TrapClass) {
		t.Error("GET response missing rendered honeypot block")
	}
}

func TestMiddlewarePassesCleanSubmission(t *testing.T) {
	e, _ := newApp(t)

	req := ghostfield.NewSubmission(parallelForm(t)).
		Set("email", "me@example.com").
		Set("message", "hello").
		Request("/contact", testUA)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("clean POST status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "email=me@example.com" {
		t.Errorf("handler saw %q, want extracted email", got)
	}
}

func TestMiddlewareRejectsFilledHoneypot(t *testing.T) {
	e, _ := newApp(t)

	req := ghostfield.NewSubmission(parallelForm(t)).
		Set("email", "bot@example.com").
		FillHoneypot("fax", "555-0100").
		Request("/contact", testUA)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("honeypot POST status = %d, want 400", rec.Code)
	}
}

func TestMiddlewareCustomOnReject(t *testing.T) {
	var got ghostfield.Verdict
	e, _ := newApp(t, WithOnReject(func(c echo.Context, v ghostfield.Verdict) error {
		got = v
		return c.JSON(http.StatusUnprocessableEntity, v)
	}))

	req := ghostfield.NewSubmission(parallelForm(t)).
		FillHoneypot("fax", "555-0100").
		Request("/contact", testUA)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if got.Code != ghostfield.CodeHoneypotFilled {
		t.Errorf("verdict code = %q, want %q", got.Code, ghostfield.CodeHoneypotFilled)
	}
	if got.Field != "fax" {
		t.Errorf("verdict field = %q, want fax", got.Field)
	}
}

func TestMiddlewareCustomContextKey(t *testing.T) {
	e := echo.New()
	p := New(testSecret, contactBuilder, WithContextKey("my.form"))

	e.GET("/x", func(c echo.Context) error {
		if FormFrom(c) != nil {
			return c.String(http.StatusInternalServerError, "form under default key")
		}
		if p.Form(c) == nil {
			return c.String(http.StatusInternalServerError, "form missing under custom key")
		}
		return c.NoContent(http.StatusOK)
	}, p.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestMiddlewareBuilderError(t *testing.T) {
	e := echo.New()
	p := New(testSecret, func(f *ghostfield.Form) error {
		_, err := f.Add(ghostfield.FieldDef{Name: "bad name"})
		return err
	})
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, p.Middleware())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("builder failure status = %d, want 500", rec.Code)
	}
}

func TestRenderHelper(t *testing.T) {
	e := echo.New()
	form := ghostfield.NewForm(testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Render(c, form.Style()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "<style>") {
		t.Error("response missing rendered component")
	}
}
