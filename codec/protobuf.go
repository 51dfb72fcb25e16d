package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf stores the document as a google.protobuf.Value.
// Numbers are doubles on the wire, so integers beyond 2^53 lose precision.
type Protobuf struct{}

var _ Document = Protobuf{}

func (Protobuf) Encode(v any) ([]byte, error) {
	n, err := Native(v)
	if err != nil {
		return nil, err
	}
	pv, err := structpb.NewValue(n)
	if err != nil {
		return nil, err
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(pv)
}

func (Protobuf) Decode(b []byte) (any, error) {
	var pv structpb.Value
	if err := proto.Unmarshal(b, &pv); err != nil {
		return nil, err
	}
	return Normalize(pv.AsInterface())
}
