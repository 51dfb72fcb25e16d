package codec

import "gopkg.in/yaml.v3"

// YAML is a document codec backed by gopkg.in/yaml.v3.
// The zero value is ready to use.
type YAML struct{}

var _ Document = YAML{}

func (YAML) Encode(v any) ([]byte, error) {
	n, err := Native(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

func (YAML) Decode(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return Normalize(v)
}
