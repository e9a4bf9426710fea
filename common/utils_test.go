package common

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "console", "json"); got != "console" {
		t.Fatalf("Coalesce = %q, want %q", got, "console")
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Fatalf("Coalesce of zeros = %d, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 5, 3, 15, 5},
		{"below", 1, 3, 15, 3},
		{"above", 20, 3, 15, 15},
		{"on lower edge", 3, 3, 15, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
