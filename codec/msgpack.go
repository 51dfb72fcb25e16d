package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a document codec backed by vmihailenco/msgpack/v5.
// The zero value is ready to use.
type Msgpack struct{}

var _ Document = Msgpack{}

func (Msgpack) Encode(v any) ([]byte, error) {
	n, err := Native(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(n)
}

func (Msgpack) Decode(b []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return Normalize(v)
}
