package codec

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/unkn0wn-root/digitize"
)

// digitsField is the field number of `repeated sint32 digits = 1 [packed = true];`.
const digitsField protowire.Number = 1

// Proto encodes Digits as the protobuf message
//
//	message Digits { repeated sint32 digits = 1; }
//
// using packed zigzag varints. Decode also accepts the unpacked form, skips unknown
// fields and rejects values that do not fit in int8.
type Proto struct{}

var _ Codec[digitize.Digits] = Proto{}

func (Proto) Encode(d digitize.Digits) ([]byte, error) {
	if len(d) == 0 {
		return nil, nil
	}
	packed := make([]byte, 0, len(d))
	for _, v := range d {
		packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(v)))
	}
	b := protowire.AppendTag(make([]byte, 0, len(packed)+3), digitsField, protowire.BytesType)
	return protowire.AppendBytes(b, packed), nil
}

func (Proto) Decode(b []byte) (digitize.Digits, error) {
	var out digitize.Digits
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == digitsField && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			for len(packed) > 0 {
				v, m := protowire.ConsumeVarint(packed)
				if m < 0 {
					return nil, protowire.ParseError(m)
				}
				packed = packed[m:]
				d, err := narrow(protowire.DecodeZigZag(v))
				if err != nil {
					return nil, err
				}
				out = append(out, d)
			}
		case num == digitsField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
			d, err := narrow(protowire.DecodeZigZag(v))
			if err != nil {
				return nil, err
			}
			out = append(out, d)
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	return out, nil
}

func narrow(v int64) (int8, error) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, fmt.Errorf("codec: proto digit %d does not fit in int8", v)
	}
	return int8(v), nil
}
