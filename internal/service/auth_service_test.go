package service

import "testing"

func TestSplitName(t *testing.T) {
	tests := []struct {
		name      string
		wantFirst string
		wantLast  string
	}{
		{"Priya Sharma", "Priya", "Sharma"},
		{"Priya", "Priya", ""},
		{"Jean Claude Van Damme", "Jean", "Claude Van Damme"},
		{"", "", ""},
		{"   ", "", ""},
		{"  Priya   Sharma  ", "Priya", "Sharma"},
	}

	for _, tt := range tests {
		first, last := splitName(tt.name)
		if first != tt.wantFirst || last != tt.wantLast {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tt.name, first, last, tt.wantFirst, tt.wantLast)
		}
	}
}
