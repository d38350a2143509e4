package domain

import "testing"

func TestCanMutate(t *testing.T) {
	if !CanMutate("u1", "u1") {
		t.Fatalf("owner should be allowed to mutate")
	}
	if CanMutate("u2", "u1") {
		t.Fatalf("non-owner should not be allowed to mutate")
	}
	if CanMutate("", "") {
		t.Fatalf("empty caller must never be allowed")
	}
}
