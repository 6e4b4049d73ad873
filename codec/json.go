package codec

import "encoding/json"

// JSON encodes V with encoding/json. Digits encode as a number array ([-5,-6]),
// never as base64.
type JSON[V any] struct{}

var _ Codec[[]int8] = JSON[[]int8]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
