package models

import "testing"

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"  --Weird--  ", "weird"},
		{"Running Shoes", "running-shoes"},
		{"UPPER", "upper"},
		{"déjà vu", "d-j-vu"},
		{"---", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tc := range cases {
		if got := DeriveSlug(tc.in); got != tc.want {
			t.Errorf("DeriveSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDeriveSlugIdempotent(t *testing.T) {
	inputs := []string{"Hello, World! 2024", "  --Weird--  ", "Trail & Hike", "STRIDE Team"}
	for _, in := range inputs {
		once := DeriveSlug(in)
		if twice := DeriveSlug(once); twice != once {
			t.Errorf("DeriveSlug not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
