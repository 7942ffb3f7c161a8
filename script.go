package ghostfield

import (
	"context"
	_ "embed"
	"io"

	"github.com/a-h/templ"
	json "github.com/goccy/go-json"
)

//go:embed client.js
var clientJS string

// scriptConfig is the wire-id mapping handed to client.js. Keys stay short
// on purpose; they appear verbatim in every protected page.
type scriptConfig struct {
	Time  string `json:"t"`
	Proof string `json:"p"`
}

// Script emits the inline handshake script: the client runtime followed by
// an arm() call wired to this Form's sigil fields. It renders nothing when
// the handshake is not enabled, so templates can include it
// unconditionally.
//
// The config values are hex-derived wire ids, safe to inline without
// further escaping.
func (f *Form) Script() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !f.sigilOn {
			return nil
		}

		timeField, ok := f.Lookup(f.sigilTimeName())
		if !ok {
			return nil
		}
		proofField, ok := f.Lookup(f.sigilName)
		if !ok {
			return nil
		}

		cfg, err := json.Marshal(scriptConfig{Time: timeField.WireID(), Proof: proofField.WireID()})
		if err != nil {
			return err
		}

		if _, err := io.WriteString(w, "<script>"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, clientJS); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n__ghostfield.arm("); err != nil {
			return err
		}
		if _, err := w.Write(cfg); err != nil {
			return err
		}
		_, err = io.WriteString(w, ");</script>")
		return err
	})
}
