// Package ghostfield hardens server-rendered HTML forms against automated
// submission using honeypot traps, per-hour field-name obfuscation, and an
// optional JavaScript handshake.
//
// ghostfield does not try to identify humans. It raises the cost of the
// cheap, high-volume attacks: scrapers that autofill every input they find,
// and replay bots that post captured form data long after scraping it.
// Anything defeating it needs a per-site effort, which is the point.
//
// # Field Naming
//
// Fields are declared under logical names ("email", "message") but travel
// under derived wire ids: a keyed SHA-512 over the logical name, the secret
// key, and the current hour bucket, prefixed with "ID". The derivation is
// deterministic, so the validating request re-derives every id from the
// same inputs instead of keeping render-time state. Names rotate every
// hour, which expires captured field mappings; submissions that cross the
// boundary are still accepted by also checking the previous hour's bucket.
//
// # Honeypots
//
// A honeypot is a field the application never reads, rendered invisible to
// people and attractive to bots. Any non-empty submitted value under a
// honeypot's wire id rejects the whole submission; whitespace counts as
// filled. AddDefaultHoneypots registers a catalog of bait names (emails,
// phones, addresses) that autofill heuristics reliably go for.
//
// # Sigil Handshake
//
// EnableSigil adds two hidden fields: an opaque time token and a
// placeholder the bundled client script overwrites with a proof,
// "tck_" + Hash32(userAgent + timeToken). The server recomputes the proof
// from the submitted token and requires exact equality. Clients that never
// executed the script, or executed it under a different User-Agent than
// they submit with, fail the check. The handshake is strictly opt-in:
// without EnableSigil no script is rendered and no proof is required.
//
// # Lifecycle
//
// A Form is request-scoped and not safe for concurrent use. Build, render,
// and validate with fresh Forms per request; the shared secret is the only
// state that persists:
//
//	// GET: render
//	form := ghostfield.NewForm(secret)
//	form.AddInput("email", ghostfield.TypeEmail, "Your email")
//	form.AddDefaultHoneypots()
//	form.EnableSigil()
//	// render form.Inputs(), form.Honeypots(), form.Style(), form.Script()
//
//	// POST: validate with an identically-declared Form
//	form := buildForm(secret)
//	if !form.ValidateRequest(r) {
//	    http.Error(w, "rejected", http.StatusBadRequest)
//	    return
//	}
//	data := form.ExtractRequest(r)
//
// The GET and POST Forms must register the same logical names; the
// derivation ties them together.
//
// # Stash
//
// SealStash and OpenStash carry a rejected submission's legitimate values
// across a redirect as a signed (or encrypted) token, so applications can
// re-render the form pre-filled without a server-side session.
//
// # Security Model
//
// The secret key must stay server-side; with it, the whole scheme is
// reproducible. An empty secret is tolerated but reduces obfuscation to
// obscurity, and NewForm warns about it when given a logger. Logging never
// includes submitted values or the User-Agent, only logical field names and
// rejection codes.
package ghostfield
