package util

import (
	"strings"
	"testing"
)

func TestUniqSorted(t *testing.T) {
	in := []string{"3", "1", "3", "-2", "1"}
	got := UniqSorted(in)
	want := []string{"-2", "1", "3"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v want %v", got, want)
	}
	if in[0] != "3" || in[4] != "1" {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestBulkKeyCanonicalization(t *testing.T) {
	k1 := BulkKey("bulk:n:i64", UniqSorted([]string{"30", "10", "40"}))
	k2 := BulkKey("bulk:n:i64", UniqSorted([]string{"10", "30", "30", "40"}))
	if k1 != k2 {
		t.Fatalf("bulk keys differ for equivalent sets: %q vs %q", k1, k2)
	}
	if !strings.HasPrefix(k1, "bulk:n:i64:") || len(k1) != len("bulk:n:i64:")+16 {
		t.Fatalf("unexpected bulk key shape %q", k1)
	}
	if k3 := BulkKey("bulk:n:i64", []string{"10", "30"}); k3 == k1 {
		t.Fatalf("different sets share key %q", k3)
	}
}
