package transport

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/renqiu/lspipe/codec"
)

// DefaultCharset is the canonical body encoding when Content-Type is
// absent or carries no charset parameter.
const DefaultCharset = "utf-8"

const charsetParam = "charset="

// ResolveCharset derives the body charset from a raw Content-Type
// header value. The bare alias "utf8" is normalized to the canonical
// "utf-8"; every other charset name is returned verbatim for the
// decoder to resolve. Exactly this one alias is special-cased — do not
// extend the list without wire evidence.
func ResolveCharset(contentType string) string {
	i := strings.Index(strings.ToLower(contentType), charsetParam)
	if i < 0 {
		return DefaultCharset
	}
	cs := contentType[i+len(charsetParam):]
	if cs == "" || cs == "utf8" {
		return DefaultCharset
	}
	return cs
}

// ResolveContentType splits a raw Content-Type value into the media
// type (selecting the serializer) and the charset (selecting the text
// decoding). An absent or blank media type means application/json.
func ResolveContentType(contentType string) (mediaType, charset string) {
	mediaType = contentType
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		mediaType = contentType[:i]
	}
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		mediaType = codec.MediaTypeJSON
	}
	return mediaType, ResolveCharset(contentType)
}

// decodeBody converts body bytes in the given charset to UTF-8. The
// default charset is passed through untouched.
func decodeBody(body []byte, charset string) ([]byte, error) {
	if charset == DefaultCharset {
		return body, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("transport: unsupported charset %q", charset)
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("transport: decode body as %s: %w", charset, err)
	}
	return out, nil
}
