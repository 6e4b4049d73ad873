package codec

import "github.com/unkn0wn-root/digitize"

// Packed stores one byte per digit (two's complement int8). It is the smallest
// encoding and the memo default. Decode copies, so the result never aliases b.
type Packed struct{}

var _ Codec[digitize.Digits] = Packed{}

func (Packed) Encode(d digitize.Digits) ([]byte, error) {
	out := make([]byte, len(d))
	for i, v := range d {
		out[i] = byte(v)
	}
	return out, nil
}

func (Packed) Decode(b []byte) (digitize.Digits, error) {
	if len(b) == 0 {
		return nil, nil
	}
	out := make(digitize.Digits, len(b))
	for i, v := range b {
		out[i] = int8(v)
	}
	return out, nil
}
