package ghostfield

import (
	"crypto/sha512"
	"encoding/hex"
	"time"
)

// wirePrefix starts every derived wire id. Hex digests can begin with a
// digit; the prefix keeps derived names valid as HTML4 ids and safe for
// CSS selectors.
const wirePrefix = "ID"

// bucketLayout formats a time down to its hour, e.g. "2025-07-14 09".
const bucketLayout = "2006-01-02 15"

// WireID derives the obfuscated wire name for a logical field name. The
// derivation is a keyed SHA-512 over name, secret and bucket:
//
//	WireID("email", secret, "2025-07-14 09")
//	// "ID3a91bc..." (130 chars)
//
// Equal inputs always produce equal output, so the server can re-derive
// submitted names without storing any per-request state. Without the secret
// the mapping is not predictable; an empty secret degrades the scheme to
// obscurity only, which NewForm warns about but does not prevent.
func WireID(name, secret, bucket string) string {
	sum := sha512.Sum512([]byte(name + "_" + secret + bucket))
	return wirePrefix + hex.EncodeToString(sum[:])
}

// BucketAt returns the hour bucket string for t in t's location.
func BucketAt(t time.Time) string {
	return t.Format(bucketLayout)
}

// candidateBuckets returns the buckets a submission may have been rendered
// under, in priority order: the bucket at now, then the previous hour's
// bucket when it differs. Forms rendered just before an hour boundary stay
// valid for up to an hour after it.
func candidateBuckets(now time.Time) []string {
	return bucketPair(BucketAt(now), BucketAt(now.Add(-time.Hour)))
}

// bucketPair deduplicates the current/previous pair. The strings can
// coincide when a DST fold repeats a wall-clock hour; no bucket is checked
// twice.
func bucketPair(current, previous string) []string {
	if previous == current {
		return []string{current}
	}
	return []string{current, previous}
}
