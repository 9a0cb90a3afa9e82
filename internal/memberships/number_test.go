package memberships

import (
	"strconv"
	"strings"
	"testing"
)

func TestDeriveNumberDeterministic(t *testing.T) {
	id := "a2f1c9d4-5b3e-4f6a-8d7c-1e2b3c4d5e6f"
	first := DeriveNumber("BP", id)
	second := DeriveNumber("BP", id)
	if first != second {
		t.Fatalf("expected stable number, got %s and %s", first, second)
	}
}

func TestDeriveNumberShape(t *testing.T) {
	ids := []string{
		"a2f1c9d4-5b3e-4f6a-8d7c-1e2b3c4d5e6f",
		"00000000-0000-0000-0000-000000000000",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
		"7c9e6679-7425-40de-944b-e07fc1f90ae7",
	}
	for _, id := range ids {
		number := DeriveNumber("BP", id)
		if !strings.HasPrefix(number, "BP") {
			t.Fatalf("expected BP prefix, got %s", number)
		}
		digits := strings.TrimPrefix(number, "BP")
		value, err := strconv.Atoi(digits)
		if err != nil {
			t.Fatalf("expected numeric suffix, got %s", digits)
		}
		if value < 10000 || value > 99999 {
			t.Fatalf("expected five digit number in [10000,99999], got %d", value)
		}
	}
}

func TestDeriveNumberDiffersByUser(t *testing.T) {
	a := DeriveNumber("BP", "a2f1c9d4-5b3e-4f6a-8d7c-1e2b3c4d5e6f")
	b := DeriveNumber("BP", "b3e2d0c5-6c4f-5a7b-9e8d-2f3c4d5e6f7a")
	if a == b {
		t.Fatalf("expected different numbers for different users, both %s", a)
	}
}
