package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Fingerprint derives the cache key for a (category, params) pair. Keys
// are sorted before serialization so two parameter maps with the same
// entries always produce the same key regardless of construction order.
// The category prefix stays in the clear so callers can invalidate by
// category with a simple prefix match.
func Fingerprint(category string, params map[string]any) string {
	var b strings.Builder
	b.WriteString(category)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(canonicalValue(params[k]))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return category + ":" + hex.EncodeToString(sum[:8])
}

// FingerprintCategory extracts the category prefix from a fingerprint.
func FingerprintCategory(fp string) string {
	if i := strings.IndexByte(fp, ':'); i >= 0 {
		return fp[:i]
	}
	return fp
}

// canonicalValue renders a primitive parameter value in a form stable
// across runs. Distinct types that print identically (the string "5" vs
// the int 5) are disambiguated with a type tag.
func canonicalValue(v any) string {
	switch t := v.(type) {
	case string:
		return "s:" + t
	case bool:
		return "b:" + strconv.FormatBool(t)
	case int:
		return "n:" + strconv.FormatInt(int64(t), 10)
	case int64:
		return "n:" + strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return "n:" + strconv.FormatInt(int64(t), 10)
		}
		return "f:" + strconv.FormatFloat(t, 'g', -1, 64)
	case nil:
		return "z:"
	default:
		return "v:" + fmt.Sprintf("%v", t)
	}
}
