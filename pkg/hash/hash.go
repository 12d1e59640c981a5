package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// SessionDigest returns the storage key for a raw session token. Only the
// digest is persisted, so a dumped session store cannot be replayed against
// the cookie.
func SessionDigest(token string) string {
	return SHA256Hex(token)
}

// IPHashPrefix returns a short, irreversible prefix of SHA256(ip) for log
// correlation without storing the raw address.
func IPHashPrefix(ip string, prefixLen int) string {
	full := SHA256Hex(ip)
	if prefixLen > len(full) {
		return full
	}
	return full[:prefixLen]
}
