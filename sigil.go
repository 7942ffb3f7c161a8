package ghostfield

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ProofPrefix starts every valid handshake proof. It is part of the wire
// contract with client.js: the server recognizes a completed handshake by
// this literal prefix, and the pre-rendered placeholder can never carry it.
const ProofPrefix = "tck_"

// defaultSigilName is the logical name of the proof field unless
// WithSigilName overrides it. The time field is derived from it.
const defaultSigilName = "sigil"

// sigilTimeSuffix is appended to the proof field's name to form the time
// field's logical name.
const sigilTimeSuffix = "_time"

// EnableSigil turns on the JS handshake by registering two hidden fields:
//
//   - "<name>_time" carrying an opaque token derived from the Form's
//     reference time
//   - "<name>" carrying a random placeholder the client script overwrites
//     with its proof
//
// Calling it again is a no-op. Returns ErrInvalidFieldName or
// ErrDuplicateField when the configured sigil name is unusable; on error
// the Form is left unchanged.
func (f *Form) EnableSigil() error {
	if f.sigilOn {
		return nil
	}

	timeName := f.sigilName + sigilTimeSuffix
	for _, name := range []string{timeName, f.sigilName} {
		if !ValidFieldName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidFieldName, name)
		}
		if _, exists := f.byName[name]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
	}

	if _, err := f.add(FieldDef{Name: timeName, Type: TypeHidden, Value: timeToken(f.now)}, true); err != nil {
		return err
	}
	// The placeholder only needs to be unique per render and to never start
	// with ProofPrefix. A UUID satisfies both.
	if _, err := f.add(FieldDef{Name: f.sigilName, Type: TypeHidden, Value: uuid.NewString()}, true); err != nil {
		return err
	}

	f.sigilOn = true
	return nil
}

// SigilProof computes the proof the client script is expected to submit for
// a given User-Agent and time token:
//
//	proof := ghostfield.SigilProof(userAgent, submittedTimeToken)
//
// Validation recomputes the proof from the submitted time token, not from
// the validating Form's clock, so a submission crossing an hour boundary
// still verifies.
func SigilProof(userAgent, timeToken string) string {
	return ProofPrefix + Hash32(userAgent+timeToken)
}

// timeToken derives the opaque token rendered into the sigil time field:
// the SHA-1 hex digest of the decimal Unix timestamp. The token hides the
// render time from casual inspection; it carries no integrity of its own,
// the proof binds it.
func timeToken(t time.Time) string {
	sum := sha1.Sum([]byte(strconv.FormatInt(t.Unix(), 10)))
	return hex.EncodeToString(sum[:])
}

// sigilTimeName returns the logical name of the handshake's time field.
func (f *Form) sigilTimeName() string {
	return f.sigilName + sigilTimeSuffix
}
