package codec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeyFunc maps one string key between its wire form and the internal
// form used by protocol consumers. The zero value (nil) means no
// translation.
type KeyFunc func(string) string

// protocolKeys are the top-level JSON-RPC discriminator fields that
// must stay reachable under their literal wire name after decoding.
var protocolKeys = []string{"id", "jsonrpc", "method", "params", "error", "result"}

// KebabCase converts a camelCase wire key to the lowercase hyphenated
// internal convention, e.g. "textDocumentSync" -> "text-document-sync".
func KebabCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCase converts a hyphenated internal key to the camelCase wire
// convention. Keys without a hyphen are already in wire form and pass
// through unchanged.
func CamelCase(key string) string {
	if !strings.ContainsRune(key, '-') {
		return key
	}
	parts := strings.Split(key, "-")
	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

// TranslateKeys rewrites every map key in v with fn, recursing through
// nested maps and slices. Non-container values are returned as-is.
func TranslateKeys(v interface{}, fn KeyFunc) interface{} {
	if fn == nil {
		return v
	}
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, nested := range val {
			out[fn(k)] = TranslateKeys(nested, fn)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, nested := range val {
			out[i] = TranslateKeys(nested, fn)
		}
		return out
	default:
		return v
	}
}

// ExposeWireKeys makes each top-level protocol field of the wire
// document doc reachable in translated under both its literal wire key
// and its translated key, regardless of how fn would otherwise rewrite
// or drop it. This is a contract of the message reader, not a
// best-effort patch: dispatchers rely on finding "id" and "method"
// under both names.
func ExposeWireKeys(doc map[string]interface{}, translated map[string]interface{}, fn KeyFunc) {
	for _, k := range protocolKeys {
		raw, ok := doc[k]
		if !ok {
			continue
		}
		v := TranslateKeys(raw, fn)
		translated[k] = v
		if fn == nil {
			continue
		}
		if ik := fn(k); ik != "" && ik != k {
			translated[ik] = v
		}
	}
}
