package ghostfield

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// TrapClass is the CSS class on the container Honeypots renders and the
// selector Style targets. Override the styling by emitting your own rule
// for it instead of using Style.
const TrapClass = "gf-extra"

// FieldAttrs builds the attribute set for one field's input element. Legit
// fields get type, name, and any placeholder or value. Traps additionally
// get tabindex="-1" and autocomplete="off", and a baited trap renders
// disabled so a real browser keeps it out of the submitted form data.
// Sigil fields carry only type, name, and value.
//
// Use it from a templ template when the built-in components are not enough:
//
//	<input { ghostfield.FieldAttrs(field)... } class="form-control"/>
func FieldAttrs(f Field) templ.Attributes {
	attrs := templ.Attributes{
		"type": f.Type(),
		"name": f.WireID(),
	}
	if f.Placeholder() != "" {
		attrs["placeholder"] = f.Placeholder()
	}
	if f.Value() != "" {
		attrs["value"] = f.Value()
	}
	if f.Legit() || f.Sigil() {
		return attrs
	}
	attrs["tabindex"] = "-1"
	attrs["autocomplete"] = "off"
	if f.Value() != "" {
		attrs["disabled"] = true
	}
	return attrs
}

// renderInput writes one <input> element for f.
func renderInput(ctx context.Context, w io.Writer, f Field) error {
	if _, err := io.WriteString(w, "<input"); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, FieldAttrs(f)); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

// Input renders the single field registered under the logical name as a
// bare <input> element. Unknown names render nothing, so a template typo
// degrades to a missing input rather than an error page.
func (f *Form) Input(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fld, ok := f.Lookup(name)
		if !ok {
			return nil
		}
		return renderInput(ctx, w, fld)
	})
}

// Inputs renders every legitimate field as a bare <input> element in
// registration order. Applications wanting labels or layout should render
// per-field with Input or FieldAttrs instead.
func (f *Form) Inputs() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, fld := range f.fields {
			if !fld.legit {
				continue
			}
			if err := renderInput(ctx, w, fld); err != nil {
				return err
			}
		}
		return nil
	})
}

// Honeypots renders the protection block: every trap input wrapped in a
// container carrying TrapClass, followed by the sigil's hidden inputs when
// the handshake is enabled. Place it anywhere inside the <form> element,
// together with Style or an equivalent rule.
func (f *Form) Honeypots() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var traps, sigils []Field
		for _, fld := range f.fields {
			switch {
			case fld.sigil:
				sigils = append(sigils, fld)
			case !fld.legit:
				traps = append(traps, fld)
			}
		}

		if len(traps) > 0 {
			if _, err := io.WriteString(w, `<div class="`+TrapClass+`" aria-hidden="true">`); err != nil {
				return err
			}
			for _, fld := range traps {
				if err := renderInput(ctx, w, fld); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</div>"); err != nil {
				return err
			}
		}

		for _, fld := range sigils {
			if err := renderInput(ctx, w, fld); err != nil {
				return err
			}
		}
		return nil
	})
}

// Style emits the stylesheet that moves the trap container out of sight.
// Traps are hidden by offscreen positioning, not display:none, and stay
// focusable-looking in the markup.
func (f *Form) Style() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<style>.`+TrapClass+`{position:absolute!important;left:-9999px;top:-9999px;height:0;width:0;overflow:hidden}</style>`)
		return err
	})
}
