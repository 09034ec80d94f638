package nilguard

import "testing"

func TestCovers(t *testing.T) {
	tests := []struct {
		asserted string
		key      string
		want     bool
	}{
		{"a", "a", true},
		{"a.b", "a.b", true},
		{"a.b", "a", false}, // no markers, no prefix coverage
		{"a?.b", "a.b", true},
		{"a?.b", "a", true},
		{"a?.b?.c", "a.b.c", true},
		{"a?.b?.c", "a.b", true},
		{"a?.b?.c", "a", true},
		{"a?.b.c", "a", true},
		{"a?.b.c", "a.b", false}, // "a.b" does not end right before a marker
		{"a?.b", "b", false},
		{"a?.b", "a.c", false},
	}

	for _, tt := range tests {
		if got := Covers(tt.asserted, tt.key); got != tt.want {
			t.Errorf("Covers(%q, %q) = %v, want %v", tt.asserted, tt.key, got, tt.want)
		}
	}
}

func TestOwns(t *testing.T) {
	tests := []struct {
		lhs  string
		key  string
		want bool
	}{
		{"a", "a", true},
		{"a", "a.b", true},
		{"a.b", "a.b.c", true},
		{"a", "ab", false},
		{"a.b", "a", false},
		{"b", "a.b", false},
	}

	for _, tt := range tests {
		if got := owns(tt.lhs, tt.key); got != tt.want {
			t.Errorf("owns(%q, %q) = %v, want %v", tt.lhs, tt.key, got, tt.want)
		}
	}
}
