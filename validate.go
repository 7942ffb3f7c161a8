package ghostfield

// Rejection codes carried by Verdict.
const (
	// CodeHoneypotFilled means a trap field arrived with a non-empty value.
	CodeHoneypotFilled = "honeypot_filled"
	// CodeSigilMissing means the handshake is enabled but the submission
	// lacks a time token or a proof.
	CodeSigilMissing = "sigil_missing"
	// CodeSigilMismatch means a proof arrived but does not match the value
	// recomputed from the submitted time token and User-Agent.
	CodeSigilMismatch = "sigil_mismatch"
)

// Verdict is the outcome of inspecting one submission. The zero value is a
// rejection with no detail; passing verdicts have OK set and nothing else.
type Verdict struct {
	OK    bool   `json:"ok"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// Validate reports whether the submission passes every trap and, when
// enabled, the sigil handshake. It is Inspect reduced to the boolean most
// call sites want:
//
//	if !form.Validate(values, r.UserAgent()) {
//	    http.Error(w, "rejected", http.StatusBadRequest)
//	    return
//	}
//
// submitted maps wire names to values as they arrived; userAgent is the
// caller-supplied User-Agent of the submitting client. There is nothing to
// retry: a rejected submission is simply not processed.
func (f *Form) Validate(submitted map[string]string, userAgent string) bool {
	return f.Inspect(submitted, userAgent).OK
}

// Inspect runs the full validation pass and returns a Verdict naming the
// first failure, if any.
//
// Every registered trap is checked under the current hour bucket and, when
// its string differs, the previous hour's bucket, so a form rendered just
// before an hour boundary is not rejected for being slow. A trap whose
// wire id arrives with any non-empty value fails the submission on the
// spot; whitespace counts as filled, an empty string does not. Browser
// autofill is expected to skip the traps entirely, so values showing up
// there means automation.
//
// Sigil field values are captured during the same sweep, first non-empty
// occurrence wins across buckets. When the handshake is enabled the proof
// must equal SigilProof(userAgent, submittedTimeToken) exactly; the time
// token is taken from the submission, not recomputed from the clock. When
// the handshake was never enabled no sigil check runs at all.
func (f *Form) Inspect(submitted map[string]string, userAgent string) Verdict {
	var sigilTime, sigilProof string

	for _, bucket := range candidateBuckets(f.now) {
		for i := range f.fields {
			fld := &f.fields[i]
			if fld.legit {
				continue
			}

			id := fld.wireID
			if bucket != f.bucket {
				id = WireID(fld.name, f.secret, bucket)
			}

			if fld.sigil {
				switch fld.name {
				case f.sigilTimeName():
					if sigilTime == "" {
						sigilTime = submitted[id]
					}
				case f.sigilName:
					if sigilProof == "" {
						sigilProof = submitted[id]
					}
				}
				continue
			}

			if v, ok := submitted[id]; ok && v != "" {
				return f.reject(CodeHoneypotFilled, fld.name)
			}
		}
	}

	if f.sigilOn {
		if sigilTime == "" || sigilProof == "" {
			return f.reject(CodeSigilMissing, f.sigilName)
		}
		if sigilProof != SigilProof(userAgent, sigilTime) {
			return f.reject(CodeSigilMismatch, f.sigilName)
		}
	}

	return Verdict{OK: true}
}

func (f *Form) reject(code, field string) Verdict {
	f.logReject(code, field)
	return Verdict{Code: code, Field: field}
}

// ExtractData maps a submission back to logical names, returning the values
// of every legitimate field found under the current bucket. Key presence
// counts as found, so deliberately empty values survive extraction.
//
// When nothing at all matches the current bucket the previous hour's bucket
// is tried once, all fields together. Buckets never mix within one result:
// a submission is a snapshot of a single rendered form, not of two.
func (f *Form) ExtractData(submitted map[string]string) map[string]string {
	out := f.extractAt(submitted, f.bucket)
	if len(out) == 0 {
		if buckets := candidateBuckets(f.now); len(buckets) == 2 {
			out = f.extractAt(submitted, buckets[1])
		}
	}
	return out
}

func (f *Form) extractAt(submitted map[string]string, bucket string) map[string]string {
	out := make(map[string]string)
	for i := range f.fields {
		fld := &f.fields[i]
		if !fld.legit {
			continue
		}
		id := fld.wireID
		if bucket != f.bucket {
			id = WireID(fld.name, f.secret, bucket)
		}
		if v, ok := submitted[id]; ok {
			out[fld.name] = v
		}
	}
	return out
}
