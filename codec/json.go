package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// JSON is the default document codec. The zero value writes compact JSON;
// set Indent for human-editable files.
//
// Decode keeps numbers as json.Number, so integers survive exactly.
type JSON struct {
	Indent string
}

var _ Document = JSON{}

func (c JSON) Encode(v any) ([]byte, error) {
	n, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	if c.Indent != "" {
		return json.MarshalIndent(n, "", c.Indent)
	}
	return json.Marshal(n)
}

func (JSON) Decode(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("codec: trailing data after JSON document")
	}
	return v, nil
}
