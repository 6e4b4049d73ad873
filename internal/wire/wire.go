package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	version    byte = 1
	kindSingle byte = 1
	kindBulk   byte = 2

	// SignedBit is set in the width byte for signed source types.
	SignedBit byte = 0x80
)

var (
	ErrCorrupt = errors.New("digitize: corrupt entry")
	magic4     = [...]byte{'D', 'G', 'T', 'Z'}
)

// Width packs a bit size and signedness into the header width byte.
func Width(bits int, signed bool) byte {
	w := byte(bits)
	if signed {
		w |= SignedBit
	}
	return w
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Single: magic(4) | ver(1) | kind(1=single) | width(1) | vlen(u32 be) | payload(vlen)
func EncodeSingle(width byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSingle)
	buf.WriteByte(width)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeSingle returns the width byte and a payload slice aliasing b.
func DecodeSingle(b []byte) (width byte, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSingle {
		return 0, nil, ErrCorrupt
	}
	width = b[6]
	off := 7

	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // exact: no trailing bytes
		return 0, nil, ErrCorrupt
	}

	return width, b[off : off+vlen], nil
}

// Bulk:
//
//	magic(4) | ver(1) | kind(1=bulk) | width(1) | n(u32 be)
//	keyLen(u16 be) | key(keyLen) | vlen(u32 be) | payload(vlen) * n
type BulkItem struct {
	Key     string
	Payload []byte
}

func EncodeBulk(width byte, items []BulkItem) ([]byte, error) {
	total := 4 + 1 + 1 + 1 + 4
	for _, it := range items {
		if l := len(it.Key); l == 0 || l > 0xFFFF {
			return nil, fmt.Errorf("digitize: invalid key length %d in bulk", l)
		}
		total += 2 + len(it.Key) + 4 + len(it.Payload)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBulk)
	buf.WriteByte(width)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(items)))
	buf.Write(u4[:])

	for _, it := range items {
		binary.BigEndian.PutUint16(u2[:], uint16(len(it.Key)))
		buf.Write(u2[:])
		buf.WriteString(it.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(it.Payload)))
		buf.Write(u4[:])
		buf.Write(it.Payload)
	}

	return buf.Bytes(), nil
}

// DecodeBulk returns the width byte and the items; payloads alias b.
func DecodeBulk(b []byte) (byte, []BulkItem, error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindBulk {
		return 0, nil, ErrCorrupt
	}
	width := b[6]
	off := 7

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	// every item needs at least keyLen(2) + 1 key byte + vlen(4)
	if n < 0 || n > (len(b)-off)/7 {
		return 0, nil, ErrCorrupt
	}

	items := make([]BulkItem, 0, n)
	for i := 0; i < n; i++ {
		if off+2 > len(b) {
			return 0, nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint16(b[off : off+2]))
		off += 2
		if klen <= 0 || klen > len(b)-off {
			return 0, nil, ErrCorrupt
		}
		keyBytes := b[off : off+klen]
		off += klen

		if off+4 > len(b) {
			return 0, nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return 0, nil, ErrCorrupt
		}

		payload := b[off : off+vlen]
		off += vlen

		items = append(items, BulkItem{
			Key:     string(keyBytes),
			Payload: payload,
		})
	}
	if off != len(b) {
		return 0, nil, ErrCorrupt
	}

	return width, items, nil
}
