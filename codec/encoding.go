package codec

import (
	"fmt"
	"strings"
)

// Encodings lists the names accepted by ParseEncoding.
var Encodings = []string{"json", "json-indent", "cbor", "msgpack", "yaml", "protobuf"}

// ParseEncoding maps a configuration name to a document codec.
func ParseEncoding(name string) (Document, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSON{}, nil
	case "json-indent":
		return JSON{Indent: "  "}, nil
	case "cbor":
		return NewCBOR(true)
	case "msgpack":
		return Msgpack{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	case "protobuf", "proto":
		return Protobuf{}, nil
	default:
		return nil, fmt.Errorf("codec: unknown encoding %q (want one of %s)", name, strings.Join(Encodings, ", "))
	}
}
