package timeline

import "testing"

func TestTermCycle(t *testing.T) {
	t.Parallel()

	if Summer.Next() != Fall {
		t.Fatalf("Summer.Next() = %v, want Fall", Summer.Next())
	}
	if Fall.Next() != Winter {
		t.Fatalf("Fall.Next() = %v, want Winter", Fall.Next())
	}
	if Winter.Next() != Summer {
		t.Fatalf("Winter.Next() = %v, want Summer", Winter.Next())
	}
}

func TestTermPosition(t *testing.T) {
	t.Parallel()

	for i, term := range []Term{Summer, Fall, Winter} {
		if term.Position() != i {
			t.Fatalf("%v.Position() = %d, want %d", term, term.Position(), i)
		}
	}
}

func TestParseTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Term
		wantErr bool
	}{
		{"summer", Summer, false},
		{"Fall", Fall, false},
		{"WINTER", Winter, false},
		{"spring", Summer, true},
		{"", Summer, true},
	}
	for _, tt := range tests {
		got, err := ParseTerm(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseTerm(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseTerm(%q): %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseTerm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLinearIndexOrdering(t *testing.T) {
	t.Parallel()

	if got := LinearIndex(Summer, 2026); got != 2026*3 {
		t.Fatalf("LinearIndex(Summer, 2026) = %d, want %d", got, 2026*3)
	}
	if LinearIndex(Winter, 2026)+1 != LinearIndex(Summer, 2027) {
		t.Fatalf("Winter 2026 and Summer 2027 are not adjacent")
	}
}
