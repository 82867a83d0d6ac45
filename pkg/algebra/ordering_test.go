package algebra

import "testing"

func TestOrderingString(t *testing.T) {
	tests := []struct {
		ord  Ordering
		want string
	}{
		{Incomparable, "incomparable"},
		{Less, "less"},
		{Equal, "equal"},
		{Greater, "greater"},
		{Ordering(42), "incomparable"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.ord.String(); got != tt.want {
				t.Errorf("Ordering(%d).String() = %q, want %q", tt.ord, got, tt.want)
			}
		})
	}
}

func TestOrderingRelations(t *testing.T) {
	tests := []struct {
		ord     Ordering
		atMost  bool
		atLeast bool
	}{
		{Incomparable, false, false},
		{Less, true, false},
		{Equal, true, true},
		{Greater, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.ord.String(), func(t *testing.T) {
			if got := tt.ord.AtMost(); got != tt.atMost {
				t.Errorf("AtMost() = %v, want %v", got, tt.atMost)
			}
			if got := tt.ord.AtLeast(); got != tt.atLeast {
				t.Errorf("AtLeast() = %v, want %v", got, tt.atLeast)
			}
		})
	}
}
