package ghostfield

import (
	"fmt"
	"hash/fnv"
)

// Hash32 returns the FNV-1a hash of s as exactly eight lowercase hex
// digits, zero-padded:
//
//	Hash32("")  // "811c9dc5"
//	Hash32("a") // "e40c292c"
//
// The function hashes the UTF-8 bytes of s. client.js carries the same
// algorithm over the same byte sequence, so both sides of the sigil
// handshake agree on every input, ASCII or not.
func Hash32(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}
