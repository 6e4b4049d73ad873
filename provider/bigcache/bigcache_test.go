package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	p, err := New(Config{LifeWindow: time.Minute, MaxEntrySize: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(ctx) })

	if _, ok, err := p.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	want := []byte{0xfb, 0xfa}
	if ok, err := p.Set(ctx, "digits:n:i64:-56", want, 1, time.Minute); err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	got, ok, err := p.Get(ctx, "digits:n:i64:-56")
	if err != nil || !ok || !bytes.Equal(got, want) {
		t.Fatalf("Get: ok=%v err=%v got=%v", ok, err, got)
	}

	if err := p.Del(ctx, "digits:n:i64:-56"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if err := p.Del(ctx, "digits:n:i64:-56"); err != nil {
		t.Fatalf("second Del should be a no-op: %v", err)
	}
	if _, ok, _ := p.Get(ctx, "digits:n:i64:-56"); ok {
		t.Fatalf("expected miss after Del")
	}
}
