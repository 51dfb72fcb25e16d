// Package codec holds the structured-document codecs used by filecache.
//
// A document is a tree built from the value model:
//
//	nil | bool | string | json.Number | []any | map[string]any
//
// Every Decode returns a tree already in that shape (see Normalize), so a record's
// ParseJSON sees identical input no matter which encoding wrote the file.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Document is the codec shape filecache uses for structured files.
type Document = Codec[any]
