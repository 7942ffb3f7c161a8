package ghostfield

import (
	"log/slog"
	"time"
)

// Option configures a Form at construction.
type Option func(*config)

type config struct {
	now       time.Time
	logger    *slog.Logger
	sigil     bool
	sigilName string
}

// WithNow pins the Form's reference time instead of sampling the clock.
// Wire ids and the sigil time token derive from this instant, so pinning it
// makes every derived value reproducible:
//
//	at := time.Date(2025, 7, 14, 9, 30, 0, 0, time.UTC)
//	form := ghostfield.NewForm(secret, ghostfield.WithNow(at))
func WithNow(t time.Time) Option {
	return func(c *config) { c.now = t }
}

// WithLogger sets the logger rejection events and configuration warnings
// are reported to. Log records carry the logical field name and a rejection
// code, never submitted values or the User-Agent. Without a logger the Form
// stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithSigil enables the JS handshake at construction. Equivalent to calling
// EnableSigil on the fresh Form.
func WithSigil() Option {
	return func(c *config) { c.sigil = true }
}

// WithSigilName overrides the logical name of the sigil proof field. The
// companion time field is always named after it with a "_time" suffix. The
// name must satisfy ValidFieldName.
func WithSigilName(name string) Option {
	return func(c *config) { c.sigilName = name }
}
