package username

import "testing"

func TestNormalizeTruncates(t *testing.T) {
	got := Normalize("Marvin Escobar Barajas", 6)
	if got != "Marvin" {
		t.Fatalf("Normalize truncation = %q, want %q", got, "Marvin")
	}
}

func TestNormalizeReplacesNonGraphical(t *testing.T) {
	got := Normalize("a\nb\tc", 10)
	if got != "a_b\tc" {
		t.Fatalf("Normalize = %q, want %q", got, "a_b\tc")
	}
}

func TestNormalizeKeepsBlanks(t *testing.T) {
	got := Normalize("a b", 10)
	if got != "a b" {
		t.Fatalf("Normalize should keep interior spaces, got %q", got)
	}
}

func TestIsEmpty(t *testing.T) {
	cases := map[string]bool{
		"":             true,
		"   ":          true,
		"\t\t":         true,
		"Hello world":  false,
		"  x  ":        false,
	}
	for in, want := range cases {
		if got := IsEmpty(in); got != want {
			t.Errorf("IsEmpty(%q) = %v, want %v", in, got, want)
		}
	}
}
