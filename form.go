package ghostfield

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Coercive/GhostField/lib/seal"
)

// Form holds the protected field set for a single render/validate cycle.
//
// A Form is request-scoped: build a fresh one per request, register fields,
// render, and validate the eventual submission with another fresh Form built
// from the same secret. Determinism of the wire-id derivation is what ties
// the two Forms together; no state is shared between them.
//
//	form := ghostfield.NewForm(secret)
//	form.AddInput("email", ghostfield.TypeEmail, "Your email")
//	form.AddDefaultHoneypots()
//	form.EnableSigil()
//
// Form is not safe for concurrent use. It captures its reference time once
// at construction so every derived value within the request agrees on the
// hour bucket.
type Form struct {
	secret    string
	now       time.Time
	bucket    string
	fields    []Field
	byName    map[string]int
	byWire    map[string]int
	logger    *slog.Logger
	sigilName string
	sigilOn   bool
	stash     *seal.Sealer
}

// NewForm creates an empty Form keyed by secret.
//
// An empty secret is accepted: derivation still works but any party knowing
// the scheme can reproduce it. The condition is logged as a warning when a
// logger is configured.
//
// Panics if WithSigil is combined with an unusable WithSigilName, matching
// how other construction-time misconfiguration surfaces.
func NewForm(secret string, opts ...Option) *Form {
	cfg := config{now: time.Now(), sigilName: defaultSigilName}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Form{
		secret:    secret,
		now:       cfg.now,
		bucket:    BucketAt(cfg.now),
		byName:    make(map[string]int),
		byWire:    make(map[string]int),
		logger:    cfg.logger,
		sigilName: cfg.sigilName,
	}

	if secret == "" && f.logger != nil {
		f.logger.Warn("empty secret key, wire ids are guessable",
			"component", "ghostfield")
	}

	if cfg.sigil {
		if err := f.EnableSigil(); err != nil {
			panic(fmt.Sprintf("ghostfield: failed to enable sigil: %v", err))
		}
	}

	return f
}

// Now returns the reference time captured at construction.
func (f *Form) Now() time.Time {
	return f.now
}

// Bucket returns the hour bucket all of the Form's wire ids derive from.
func (f *Form) Bucket() string {
	return f.bucket
}

// SigilEnabled reports whether the JS handshake has been enabled.
func (f *Form) SigilEnabled() bool {
	return f.sigilOn
}

// SigilName returns the logical name of the sigil proof field.
func (f *Form) SigilName() string {
	return f.sigilName
}

// logReject records one rejection. Only the logical field name and the code
// are logged; submitted values and the User-Agent never reach the log.
func (f *Form) logReject(code, field string) {
	if f.logger == nil {
		return
	}
	f.logger.Warn("submission rejected",
		"component", "ghostfield",
		"code", code,
		"field", field)
}
