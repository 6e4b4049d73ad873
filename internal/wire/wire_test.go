package wire

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func mustDecodeSingle(t *testing.T, b []byte) (byte, []byte) {
	t.Helper()
	w, p, err := DecodeSingle(b)
	if err != nil {
		t.Fatalf("DecodeSingle error: %v", err)
	}
	return w, p
}

func mustDecodeBulk(t *testing.T, b []byte) (byte, []BulkItem) {
	t.Helper()
	w, it, err := DecodeBulk(b)
	if err != nil {
		t.Fatalf("DecodeBulk error: %v", err)
	}
	return w, it
}

func TestWidth(t *testing.T) {
	if got := Width(64, true); got != 64|SignedBit {
		t.Fatalf("Width(64, true) = %#x", got)
	}
	if got := Width(8, false); got != 8 {
		t.Fatalf("Width(8, false) = %#x", got)
	}
}

func TestSingleRTEmptyAndNonEmpty(t *testing.T) {
	cases := []struct {
		width   byte
		payload []byte
	}{
		{Width(8, false), nil},
		{Width(64, true), []byte{0xff, 0xfe, 0xfd}},
		{Width(32, false), []byte{1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		enc := EncodeSingle(tc.width, tc.payload)
		w, p := mustDecodeSingle(t, enc)
		if w != tc.width {
			t.Fatalf("width mismatch: got %#x want %#x", w, tc.width)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestSingleRejectsTrailingBytes(t *testing.T) {
	enc := EncodeSingle(Width(16, true), []byte{1})
	enc = append(enc, 0xDE, 0xAD)
	if _, _, err := DecodeSingle(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestSingleCorruptHeadersAndLengths(t *testing.T) {
	enc := EncodeSingle(Width(64, true), []byte{1, 2, 3})

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeSingle(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := DecodeSingle(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	badKind := append([]byte(nil), enc...)
	badKind[5] = kindBulk
	if _, _, err := DecodeSingle(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// vlen is at offset 7..10 (4 magic +1 ver +1 kind +1 width)
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[7:11], uint32(3+1))
	if _, _, err := DecodeSingle(tooLong); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	trunc := enc[:len(enc)-1]
	if _, _, err := DecodeSingle(trunc); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}

	if _, _, err := DecodeSingle(enc[:6]); err == nil {
		t.Fatalf("expected error on short header")
	}
}

func TestSingleZeroCopyPayload(t *testing.T) {
	enc := EncodeSingle(Width(8, true), []byte{7})
	_, p := mustDecodeSingle(t, enc)
	p[0] = 9
	_, p2 := mustDecodeSingle(t, enc)
	if p2[0] != 9 {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}

func TestBulkRoundTrip(t *testing.T) {
	cases := [][]BulkItem{
		nil,
		{{Key: "1", Payload: []byte{1}}},
		{
			{Key: "12", Payload: []byte{1, 2}},
			{Key: "0", Payload: nil},
			{Key: "-56", Payload: []byte{0xfb, 0xfa}},
		},
	}
	for _, items := range cases {
		enc, err := EncodeBulk(Width(64, true), items)
		if err != nil {
			t.Fatalf("EncodeBulk error: %v", err)
		}
		w, got := mustDecodeBulk(t, enc)
		if w != Width(64, true) {
			t.Fatalf("width mismatch: got %#x", w)
		}
		if len(got) != len(items) {
			t.Fatalf("len mismatch: got %d want %d", len(got), len(items))
		}
		for i := range items {
			if got[i].Key != items[i].Key || !bytes.Equal(got[i].Payload, items[i].Payload) {
				t.Fatalf("item %d mismatch: got=%+v want=%+v", i, got[i], items[i])
			}
		}
	}
}

func TestBulkRejectsTrailingBytes(t *testing.T) {
	enc, err := EncodeBulk(Width(8, false), []BulkItem{{Key: "k", Payload: []byte{1}}})
	if err != nil {
		t.Fatalf("EncodeBulk: %v", err)
	}
	enc = append(enc, 0xBE, 0xEF)
	if _, _, err := DecodeBulk(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestBulkWrongCountAndTruncation(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBulk)
	buf.WriteByte(Width(32, true))
	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], ^uint32(0))
	buf.Write(u4[:])
	if _, _, err := DecodeBulk(buf.Bytes()); err == nil {
		t.Fatalf("expected error on bogus n with insufficient bytes")
	}

	buf.Reset()
	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindBulk)
	buf.WriteByte(Width(32, true))
	binary.BigEndian.PutUint32(u4[:], 1)
	buf.Write(u4[:])
	if _, _, err := DecodeBulk(buf.Bytes()); err == nil {
		t.Fatalf("expected error on truncated item list")
	}
}

func TestBulkKeyLengthValidation(t *testing.T) {
	if _, err := EncodeBulk(0, []BulkItem{{Key: "", Payload: []byte{1}}}); err == nil {
		t.Fatalf("expected error on empty key")
	}
	if _, err := EncodeBulk(0, []BulkItem{{Key: strings.Repeat("1", 0x10000)}}); err == nil {
		t.Fatalf("expected error on key length > 0xFFFF")
	}
	if _, err := EncodeBulk(0, []BulkItem{{Key: strings.Repeat("2", 0xFFFF)}}); err != nil {
		t.Fatalf("boundary key length should succeed: %v", err)
	}
}

func TestBulkCorruptHeadersAndLengths(t *testing.T) {
	enc, err := EncodeBulk(Width(16, false), []BulkItem{
		{Key: "k", Payload: []byte{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("EncodeBulk: %v", err)
	}

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeBulk(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := DecodeBulk(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	badKind := append([]byte(nil), enc...)
	badKind[5] = kindSingle
	if _, _, err := DecodeBulk(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// header: 4 magic +1 ver +1 kind +1 width +4 n = 11 bytes
	// item: 2 klen + klen + 4 vlen + payload
	klen := 1
	offset := 11 + 2 + klen
	badVlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badVlen[offset:offset+4], uint32(3+1))
	if _, _, err := DecodeBulk(badVlen); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	badKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint16(badKlen[11:13], uint16(50))
	if _, _, err := DecodeBulk(badKlen); err == nil {
		t.Fatalf("expected error on klen beyond buffer")
	}
}
