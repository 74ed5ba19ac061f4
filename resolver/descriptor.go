package resolver

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
)

// RequestDescriptor is a fully resolved upstream request: an absolute
// URL plus validated query parameters. It is a value object; the cache
// key is a pure function of the two fields.
type RequestDescriptor struct {
	URL   string
	Query url.Values
}

// CacheKey derives the deterministic cache key for the descriptor.
// url.Values.Encode sorts parameter names, so two descriptors built
// from the same logical request always collide regardless of the order
// filters were supplied in.
func (d RequestDescriptor) CacheKey() string {
	sum := sha256.Sum256([]byte(d.URL + "?" + d.Query.Encode()))
	return hex.EncodeToString(sum[:])
}
