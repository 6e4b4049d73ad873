// Package codec serializes digit sequences for storage in a byte store.
//
// The generic codecs (CBOR, Msgpack, JSON) work for any V; Packed and Proto are
// specialised to digitize.Digits. Proto rejects varints outside int8 on decode.
// No codec checks digit range or sign; callers validate decoded sequences.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
