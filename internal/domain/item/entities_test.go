package item

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"lost", KindLost, false},
		{"  Found ", KindFound, false},
		{"LOST", KindLost, false},
		{"", "", true},
		{"stolen", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidKind) {
				t.Fatalf("ParseKind(%q): want ErrInvalidKind, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}
