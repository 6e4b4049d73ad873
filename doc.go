// Package digitize converts integers to their base-10 digits and back.
//
// Both directions are written once, generically, for every signed and unsigned
// width:
//
//	digitize.ToDigits(uint8(12))   // [1 2]
//	digitize.ToDigits(-56)         // [-5 -6]
//	digitize.FromDigits([]int8{1, 2, 3}) // 123
//
// Digits carry the sign of the number, so recomposition needs no sign flag:
//
//	-123 -> [-1 -2 -3] -> (-1*10 + -2)*10 + -3 = -123
//
// FromDigits is permissive and wraps on overflow. FromDigitsChecked is the strict
// opt-in. FromDigitsRadix folds in other bases but only base 10 inverts ToDigits.
//
// Subpackages:
//   - codec: serializers for Digits (CBOR, msgpack, JSON, protobuf wire, packed bytes).
//   - memo: decomposition cache over a pluggable byte store (provider/...).
//   - log/..., sloghooks, hooks/async: logging and event adapters for memo.
package digitize
