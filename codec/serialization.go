// Package codec
package codec

import "errors"

// Media types understood by the built-in serializers. Unknown media
// types fall back to JSON, since editor protocols commonly declare
// vendor types (e.g. application/vscode-jsonrpc) whose payload is
// still a JSON document.
const (
	MediaTypeJSON        = "application/json"
	MediaTypeMessagePack = "application/msgpack"
)

type Serializer interface {
	Unmarshal(in []byte, body interface{}) error
	Marshal(body interface{}) (out []byte, err error)
}

var serializers = map[string]Serializer{
	MediaTypeJSON:        &JSONSerialization{},
	MediaTypeMessagePack: &MessagePackSerialization{},
}

// RegisterSerializer binds a serializer to a media type, replacing any
// existing binding.
func RegisterSerializer(mediaType string, s Serializer) {
	serializers[mediaType] = s
}

// GetSerializer returns the serializer for mediaType, falling back to
// the JSON serializer when the media type is unknown.
func GetSerializer(mediaType string) Serializer {
	if s, ok := serializers[mediaType]; ok {
		return s
	}
	return serializers[MediaTypeJSON]
}

func Unmarshal(mediaType string, in []byte, body interface{}) error {
	if body == nil {
		return nil
	}
	s := GetSerializer(mediaType)
	if s == nil {
		return errors.New("serializer not registered")
	}
	return s.Unmarshal(in, body)
}

func Marshal(mediaType string, body interface{}) ([]byte, error) {
	s := GetSerializer(mediaType)
	if s == nil {
		return nil, errors.New("serializer not registered")
	}
	return s.Marshal(body)
}
